package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		doc := r.client.Collection("messages").NewDoc()
		message.ID = doc.ID
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

// ListByUser merges the sent and received sides client-side since Firestore
// cannot express the disjunction in one query.
func (r *firestoreMessageRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	sent, err := r.queryMessages(ctx, r.client.Collection("messages").Where("senderId", "==", userID))
	if err != nil {
		return nil, err
	}

	received, err := r.queryMessages(ctx, r.client.Collection("messages").Where("receiverId", "==", userID))
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) ListBetween(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	outgoing, err := r.queryMessages(ctx, r.client.Collection("messages").
		Where("senderId", "==", userID).
		Where("receiverId", "==", otherUserID))
	if err != nil {
		return nil, err
	}

	incoming, err := r.queryMessages(ctx, r.client.Collection("messages").
		Where("senderId", "==", otherUserID).
		Where("receiverId", "==", userID))
	if err != nil {
		return nil, err
	}

	messages := append(outgoing, incoming...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, userID, otherUserID string) error {
	iter := r.client.Collection("messages").
		Where("receiverId", "==", userID).
		Where("senderId", "==", otherUserID).
		Where("isRead", "==", false).
		Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate unread messages", err)
		}
		_, err = doc.Ref.Update(ctx, []firestore.Update{
			{Path: "isRead", Value: true},
		})
		if err != nil {
			return errors.Internal("Failed to mark message read", err)
		}
	}

	return nil
}

func (r *firestoreMessageRepository) queryMessages(ctx context.Context, query firestore.Query) ([]*entity.Message, error) {
	iter := query.Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
