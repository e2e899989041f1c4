package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/pkg/errors"
)

func TestCreateReviewRequiresParentProfile(t *testing.T) {
	uc := NewReviewUseCase(&fakeReviewRepo{}, newFakeParentRepo(), newFakeTutorRepo())

	_, err := uc.CreateReview(context.Background(), "nobody", CreateReviewInput{TutorID: "t1", Rating: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateReviewUpdatesTutorAggregate(t *testing.T) {
	tutor := approvedTutor("t1", "u1", "Mathematics")
	tutor.RatingAverage = 4.0
	tutor.TotalReviews = 3
	tutorRepo := newFakeTutorRepo(tutor)
	parentRepo := newFakeParentRepo(&entity.Parent{ID: "p1", UserID: "parent-user"})
	uc := NewReviewUseCase(&fakeReviewRepo{}, parentRepo, tutorRepo)

	review, err := uc.CreateReview(context.Background(), "parent-user", CreateReviewInput{
		TutorID: "t1",
		Rating:  5,
		Comment: "Excellent sessions",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", review.ParentID)

	assert.Equal(t, 4, tutor.TotalReviews)
	assert.InDelta(t, 4.25, tutor.RatingAverage, 0.0001)
}

func TestCreateReviewSurvivesAggregateFailure(t *testing.T) {
	parentRepo := newFakeParentRepo(&entity.Parent{ID: "p1", UserID: "parent-user"})
	reviewRepo := &fakeReviewRepo{}
	uc := NewReviewUseCase(reviewRepo, parentRepo, newFakeTutorRepo())

	review, err := uc.CreateReview(context.Background(), "parent-user", CreateReviewInput{
		TutorID: "missing-tutor",
		Rating:  4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	require.Len(t, reviewRepo.reviews, 1)
}

func TestListReviewsEmptyForUnknownTutor(t *testing.T) {
	uc := NewReviewUseCase(&fakeReviewRepo{}, newFakeParentRepo(), newFakeTutorRepo())

	reviews, err := uc.ListReviews(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
