package repository

import (
	"context"

	"tutorconnect/internal/domain/entity"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Material, error)
	Delete(ctx context.Context, id string) error
}
