package repository

import (
	"context"

	"tutorconnect/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	// ListByTutorID returns an empty slice when the tutor has no reviews.
	ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Review, error)
}
