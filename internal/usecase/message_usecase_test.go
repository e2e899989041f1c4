package usecase

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorconnect/internal/domain/entity"
)

type fakeMessageRepo struct {
	messages   []*entity.Message
	markedRead [][2]string
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, msg := range r.messages {
		if msg.SenderID == userID || msg.ReceiverID == userID {
			result = append(result, msg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeMessageRepo) ListBetween(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, msg := range r.messages {
		if (msg.SenderID == userID && msg.ReceiverID == otherUserID) ||
			(msg.SenderID == otherUserID && msg.ReceiverID == userID) {
			result = append(result, msg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, userID, otherUserID string) error {
	r.markedRead = append(r.markedRead, [2]string{userID, otherUserID})
	for _, msg := range r.messages {
		if msg.SenderID == otherUserID && msg.ReceiverID == userID {
			msg.IsRead = true
		}
	}
	return nil
}

func messageAt(sender, receiver, content string, minutesAgo int) *entity.Message {
	return &entity.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestListConversationsGroupsByCounterparty(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	require.NoError(t, messageRepo.Create(context.Background(), messageAt("u2", "u1", "Hi there", 30)))
	require.NoError(t, messageRepo.Create(context.Background(), messageAt("u1", "u2", "Hello", 20)))
	require.NoError(t, messageRepo.Create(context.Background(), messageAt("u3", "u1", "Available Tuesday?", 10)))
	userRepo := newFakeUserRepo(
		&entity.User{ID: "u2", FullName: "Sarah Jenkins", Role: "tutor"},
	)
	uc := NewMessageUseCase(messageRepo, userRepo, nil)

	conversations, err := uc.ListConversations(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	assert.Equal(t, "u3", conversations[0].User.ID)
	assert.Equal(t, "Unknown User", conversations[0].User.FullName)
	assert.Equal(t, "Available Tuesday?", conversations[0].LastMessage.Content)
	assert.Equal(t, 1, conversations[0].UnreadCount)

	assert.Equal(t, "u2", conversations[1].User.ID)
	assert.Equal(t, "Sarah Jenkins", conversations[1].User.FullName)
	assert.Equal(t, "Hello", conversations[1].LastMessage.Content)
	assert.Equal(t, 1, conversations[1].UnreadCount)
}

func TestGetThreadMarksIncomingRead(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	require.NoError(t, messageRepo.Create(context.Background(), messageAt("u2", "u1", "First", 30)))
	require.NoError(t, messageRepo.Create(context.Background(), messageAt("u1", "u2", "Second", 20)))
	uc := NewMessageUseCase(messageRepo, newFakeUserRepo(), nil)

	messages, err := uc.GetThread(context.Background(), "u1", "u2")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "First", messages[0].Content)
	require.Len(t, messageRepo.markedRead, 1)
	assert.Equal(t, [2]string{"u1", "u2"}, messageRepo.markedRead[0])
}

func TestGetThreadEmptyHistory(t *testing.T) {
	uc := NewMessageUseCase(&fakeMessageRepo{}, newFakeUserRepo(), nil)

	messages, err := uc.GetThread(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestSendMessagePersistsAndStampsSender(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	uc := NewMessageUseCase(messageRepo, newFakeUserRepo(), nil)

	message, err := uc.SendMessage(context.Background(), "u1", SendMessageInput{
		ReceiverID: "u2",
		Content:    "See you at 4pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", message.SenderID)
	assert.False(t, message.IsRead)
	require.Len(t, messageRepo.messages, 1)
}
