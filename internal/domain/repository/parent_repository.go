package repository

import (
	"context"

	"tutorconnect/internal/domain/entity"
)

type ParentRepository interface {
	Create(ctx context.Context, parent *entity.Parent) error
	GetByID(ctx context.Context, id string) (*entity.Parent, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Parent, error)
	Update(ctx context.Context, parent *entity.Parent) error

	CreateChild(ctx context.Context, child *entity.Child) error
	GetChildByID(ctx context.Context, id string) (*entity.Child, error)
	// ListChildren returns the parent's children ordered by creation time.
	ListChildren(ctx context.Context, parentID string) ([]*entity.Child, error)
}
