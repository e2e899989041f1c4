package repository

import (
	"context"

	"tutorconnect/internal/domain/entity"
)

// TutorFilter narrows the directory listing. Zero values mean "no constraint";
// the approved-only restriction is applied unconditionally by implementations.
type TutorFilter struct {
	Subject   string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

type TutorRepository interface {
	Create(ctx context.Context, tutor *entity.Tutor) error
	GetByID(ctx context.Context, id string) (*entity.Tutor, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Tutor, error)
	List(ctx context.Context, filter TutorFilter) ([]*entity.Tutor, error)
	Update(ctx context.Context, tutor *entity.Tutor) error
}
