package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
)

type firestoreSessionRepository struct {
	client *firestore.Client
}

func NewFirestoreSessionRepository(client *firestore.Client) repository.SessionRepository {
	return &firestoreSessionRepository{
		client: client,
	}
}

func (r *firestoreSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == "" {
		doc := r.client.Collection("sessions").NewDoc()
		session.ID = doc.ID
	}

	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	_, err := r.client.Collection("sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to create session", err)
	}

	return nil
}

func (r *firestoreSessionRepository) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	doc, err := r.client.Collection("sessions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Session", err)
		}
		return nil, errors.Internal("Failed to get session", err)
	}

	var session entity.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse session data", err)
	}

	return &session, nil
}

func (r *firestoreSessionRepository) ListByParentID(ctx context.Context, parentID string) ([]*entity.Session, error) {
	return r.listByField(ctx, "parentId", parentID)
}

func (r *firestoreSessionRepository) ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Session, error) {
	return r.listByField(ctx, "tutorId", tutorID)
}

func (r *firestoreSessionRepository) listByField(ctx context.Context, field, value string) ([]*entity.Session, error) {
	iter := r.client.Collection("sessions").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var sessions []*entity.Session
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate sessions", err)
		}
		var session entity.Session
		if err := doc.DataTo(&session); err != nil {
			return nil, errors.Internal("Failed to parse session data", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

func (r *firestoreSessionRepository) Update(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = time.Now()

	_, err := r.client.Collection("sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to update session", err)
	}

	return nil
}
