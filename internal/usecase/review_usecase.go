package usecase

import (
	"context"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	parentRepo repository.ParentRepository
	tutorRepo  repository.TutorRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	parentRepo repository.ParentRepository,
	tutorRepo repository.TutorRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		parentRepo: parentRepo,
		tutorRepo:  tutorRepo,
	}
}

type CreateReviewInput struct {
	TutorID string
	Rating  int
	Comment string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	parent, err := uc.parentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Parent profile", err)
	}

	review := &entity.Review{
		TutorID:  input.TutorID,
		ParentID: parent.ID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Recompute the tutor's aggregate; losing this update is acceptable, the
	// review itself is the authoritative record.
	if err := uc.updateTutorRating(ctx, input.TutorID, input.Rating); err != nil {
		logger.Warn("Failed to update rating for tutor %s: %v", input.TutorID, err)
	}

	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, tutorID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByTutorID(ctx, tutorID)
}

func (uc *ReviewUseCase) updateTutorRating(ctx context.Context, tutorID string, rating int) error {
	tutor, err := uc.tutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return err
	}

	total := tutor.RatingAverage*float64(tutor.TotalReviews) + float64(rating)
	tutor.TotalReviews++
	tutor.RatingAverage = total / float64(tutor.TotalReviews)

	return uc.tutorRepo.Update(ctx, tutor)
}
