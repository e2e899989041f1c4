package usecase

import (
	"context"
	"encoding/json"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/internal/infrastructure/websocket"
	"tutorconnect/pkg/logger"
	"tutorconnect/pkg/utils"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	wsManager   *websocket.Manager
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	wsManager *websocket.Manager,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		wsManager:   wsManager,
	}
}

// ListConversations groups the caller's full message history by counterparty,
// keeping the most recent message and an unread tally for each.
func (uc *MessageUseCase) ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	messages, err := uc.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := make(map[string]*entity.Conversation)
	var order []string

	for _, msg := range messages {
		otherUserID := msg.SenderID
		if msg.SenderID == userID {
			otherUserID = msg.ReceiverID
		}

		conv, ok := conversations[otherUserID]
		if !ok {
			// Messages arrive newest first, so the first one seen per
			// counterparty is the conversation's last message.
			conv = &entity.Conversation{
				User: entity.ConversationUser{ID: otherUserID},
				LastMessage: entity.LastMessage{
					Content:   msg.Content,
					CreatedAt: msg.CreatedAt,
					IsRead:    msg.IsRead,
				},
			}
			conversations[otherUserID] = conv
			order = append(order, otherUserID)
		}

		if msg.ReceiverID == userID && !msg.IsRead {
			conv.UnreadCount++
		}
	}

	profiles := make(map[string]*entity.User)
	if users, err := uc.userRepo.GetByIDs(ctx, order); err == nil {
		for _, user := range users {
			profiles[user.ID] = user
		}
	} else {
		logger.Warn("Conversation profile lookup failed: %v", err)
	}

	result := make([]*entity.Conversation, 0, len(order))
	for _, otherUserID := range order {
		conv := conversations[otherUserID]
		if profile, ok := profiles[otherUserID]; ok {
			conv.User.FullName = utils.FormatDisplayName(profile.FullName, profile.Email)
			conv.User.AvatarURL = profile.AvatarURL
			conv.User.Role = profile.Role
		} else {
			conv.User.FullName = "Unknown User"
		}
		result = append(result, conv)
	}

	return result, nil
}

// GetThread returns the chronological history with one user and marks the
// incoming side read.
func (uc *MessageUseCase) GetThread(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	messages, err := uc.messageRepo.ListBetween(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.Message{}
	}

	if err := uc.messageRepo.MarkRead(ctx, userID, otherUserID); err != nil {
		logger.Warn("Failed to mark thread read for user %s: %v", userID, err)
	}

	return messages, nil
}

type SendMessageInput struct {
	ReceiverID string
	Content    string
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*entity.Message, error) {
	message := &entity.Message{
		SenderID:   userID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.pushToReceiver(message)

	return message, nil
}

// pushToReceiver notifies a connected recipient over websocket; offline
// recipients fetch the message later.
func (uc *MessageUseCase) pushToReceiver(message *entity.Message) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type": "message",
		"data": message,
	})
	if err != nil {
		logger.Warn("Failed to marshal websocket payload: %v", err)
		return
	}

	uc.wsManager.SendToUser(message.ReceiverID, payload)
}
