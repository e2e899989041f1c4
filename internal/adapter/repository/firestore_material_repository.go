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

type firestoreMaterialRepository struct {
	client *firestore.Client
}

func NewFirestoreMaterialRepository(client *firestore.Client) repository.MaterialRepository {
	return &firestoreMaterialRepository{
		client: client,
	}
}

func (r *firestoreMaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	if material.ID == "" {
		doc := r.client.Collection("materials").NewDoc()
		material.ID = doc.ID
	}

	if material.UploadedAt.IsZero() {
		material.UploadedAt = time.Now()
	}

	_, err := r.client.Collection("materials").Doc(material.ID).Set(ctx, material)
	if err != nil {
		return errors.Internal("Failed to create material", err)
	}

	return nil
}

func (r *firestoreMaterialRepository) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	doc, err := r.client.Collection("materials").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Material", err)
		}
		return nil, errors.Internal("Failed to get material", err)
	}

	var material entity.Material
	if err := doc.DataTo(&material); err != nil {
		return nil, errors.Internal("Failed to parse material data", err)
	}

	return &material, nil
}

func (r *firestoreMaterialRepository) ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Material, error) {
	iter := r.client.Collection("materials").
		Where("tutorId", "==", tutorID).
		OrderBy("uploadedAt", firestore.Desc).
		Documents(ctx)

	materials := []*entity.Material{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate materials", err)
		}
		var material entity.Material
		if err := doc.DataTo(&material); err != nil {
			return nil, errors.Internal("Failed to parse material data", err)
		}
		materials = append(materials, &material)
	}

	return materials, nil
}

func (r *firestoreMaterialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("materials").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete material", err)
	}

	return nil
}
