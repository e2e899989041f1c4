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

type firestoreTutorRepository struct {
	client *firestore.Client
}

func NewFirestoreTutorRepository(client *firestore.Client) repository.TutorRepository {
	return &firestoreTutorRepository{
		client: client,
	}
}

func (r *firestoreTutorRepository) Create(ctx context.Context, tutor *entity.Tutor) error {
	if tutor.ID == "" {
		doc := r.client.Collection("tutors").NewDoc()
		tutor.ID = doc.ID
	}

	now := time.Now()
	if tutor.CreatedAt.IsZero() {
		tutor.CreatedAt = now
	}
	tutor.UpdatedAt = now

	_, err := r.client.Collection("tutors").Doc(tutor.ID).Set(ctx, tutor)
	if err != nil {
		return errors.Internal("Failed to create tutor profile", err)
	}

	return nil
}

func (r *firestoreTutorRepository) GetByID(ctx context.Context, id string) (*entity.Tutor, error) {
	doc, err := r.client.Collection("tutors").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tutor", err)
		}
		return nil, errors.Internal("Failed to get tutor", err)
	}

	var tutor entity.Tutor
	if err := doc.DataTo(&tutor); err != nil {
		return nil, errors.Internal("Failed to parse tutor data", err)
	}

	return &tutor, nil
}

func (r *firestoreTutorRepository) GetByUserID(ctx context.Context, userID string) (*entity.Tutor, error) {
	iter := r.client.Collection("tutors").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Tutor", err)
		}
		return nil, errors.Internal("Failed to get tutor by user", err)
	}

	var tutor entity.Tutor
	if err := doc.DataTo(&tutor); err != nil {
		return nil, errors.Internal("Failed to parse tutor data", err)
	}

	return &tutor, nil
}

// List always restricts to approved profiles; the remaining filter fields are
// applied only when set.
func (r *firestoreTutorRepository) List(ctx context.Context, filter repository.TutorFilter) ([]*entity.Tutor, error) {
	query := r.client.Collection("tutors").Query.Where("verificationStatus", "==", "approved")

	if filter.Subject != "" {
		query = query.Where("subjects", "array-contains", filter.Subject)
	}
	if filter.MinPrice > 0 {
		query = query.Where("hourlyRateMin", ">=", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("hourlyRateMax", "<=", filter.MaxPrice)
	}
	if filter.MinRating > 0 {
		query = query.Where("ratingAverage", ">=", filter.MinRating)
	}

	iter := query.Documents(ctx)
	var tutors []*entity.Tutor

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate tutors", err)
		}
		var tutor entity.Tutor
		if err := doc.DataTo(&tutor); err != nil {
			return nil, errors.Internal("Failed to parse tutor data", err)
		}
		tutors = append(tutors, &tutor)
	}

	return tutors, nil
}

func (r *firestoreTutorRepository) Update(ctx context.Context, tutor *entity.Tutor) error {
	tutor.UpdatedAt = time.Now()

	_, err := r.client.Collection("tutors").Doc(tutor.ID).Set(ctx, tutor)
	if err != nil {
		return errors.Internal("Failed to update tutor profile", err)
	}

	return nil
}
