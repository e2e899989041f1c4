package repository

import (
	"context"

	"tutorconnect/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// ListByUser returns every message the user sent or received, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Message, error)
	// ListBetween returns the thread between two users in chronological order.
	ListBetween(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error)
	MarkRead(ctx context.Context, userID, otherUserID string) error
}
