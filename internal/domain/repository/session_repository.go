package repository

import (
	"context"

	"tutorconnect/internal/domain/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	ListByParentID(ctx context.Context, parentID string) ([]*entity.Session, error)
	ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Session, error)
	Update(ctx context.Context, session *entity.Session) error
}
