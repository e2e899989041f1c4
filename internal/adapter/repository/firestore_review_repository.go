package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		doc := r.client.Collection("reviews").NewDoc()
		review.ID = doc.ID
	}

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Review, error) {
	iter := r.client.Collection("reviews").
		Where("tutorId", "==", tutorID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	reviews := []*entity.Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
