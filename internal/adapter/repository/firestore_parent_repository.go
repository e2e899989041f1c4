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

type firestoreParentRepository struct {
	client *firestore.Client
}

func NewFirestoreParentRepository(client *firestore.Client) repository.ParentRepository {
	return &firestoreParentRepository{
		client: client,
	}
}

func (r *firestoreParentRepository) Create(ctx context.Context, parent *entity.Parent) error {
	if parent.ID == "" {
		doc := r.client.Collection("parents").NewDoc()
		parent.ID = doc.ID
	}

	now := time.Now()
	if parent.CreatedAt.IsZero() {
		parent.CreatedAt = now
	}
	parent.UpdatedAt = now

	_, err := r.client.Collection("parents").Doc(parent.ID).Set(ctx, parent)
	if err != nil {
		return errors.Internal("Failed to create parent profile", err)
	}

	return nil
}

func (r *firestoreParentRepository) GetByID(ctx context.Context, id string) (*entity.Parent, error) {
	doc, err := r.client.Collection("parents").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Parent", err)
		}
		return nil, errors.Internal("Failed to get parent", err)
	}

	var parent entity.Parent
	if err := doc.DataTo(&parent); err != nil {
		return nil, errors.Internal("Failed to parse parent data", err)
	}

	return &parent, nil
}

func (r *firestoreParentRepository) GetByUserID(ctx context.Context, userID string) (*entity.Parent, error) {
	iter := r.client.Collection("parents").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Parent", err)
		}
		return nil, errors.Internal("Failed to get parent by user", err)
	}

	var parent entity.Parent
	if err := doc.DataTo(&parent); err != nil {
		return nil, errors.Internal("Failed to parse parent data", err)
	}

	return &parent, nil
}

func (r *firestoreParentRepository) Update(ctx context.Context, parent *entity.Parent) error {
	parent.UpdatedAt = time.Now()

	_, err := r.client.Collection("parents").Doc(parent.ID).Set(ctx, parent)
	if err != nil {
		return errors.Internal("Failed to update parent profile", err)
	}

	return nil
}

func (r *firestoreParentRepository) CreateChild(ctx context.Context, child *entity.Child) error {
	if child.ID == "" {
		doc := r.client.Collection("children").NewDoc()
		child.ID = doc.ID
	}

	if child.CreatedAt.IsZero() {
		child.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("children").Doc(child.ID).Set(ctx, child)
	if err != nil {
		return errors.Internal("Failed to create child record", err)
	}

	return nil
}

func (r *firestoreParentRepository) GetChildByID(ctx context.Context, id string) (*entity.Child, error) {
	doc, err := r.client.Collection("children").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Child", err)
		}
		return nil, errors.Internal("Failed to get child", err)
	}

	var child entity.Child
	if err := doc.DataTo(&child); err != nil {
		return nil, errors.Internal("Failed to parse child data", err)
	}

	return &child, nil
}

// ListChildren orders by creation time so "first child" selection during
// booking is deterministic.
func (r *firestoreParentRepository) ListChildren(ctx context.Context, parentID string) ([]*entity.Child, error) {
	iter := r.client.Collection("children").
		Where("parentId", "==", parentID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)

	var children []*entity.Child
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate children", err)
		}
		var child entity.Child
		if err := doc.DataTo(&child); err != nil {
			return nil, errors.Internal("Failed to parse child data", err)
		}
		children = append(children, &child)
	}

	return children, nil
}
