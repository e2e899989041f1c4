package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
)

func approvedTutor(id, userID string, subjects ...string) *entity.Tutor {
	return &entity.Tutor{
		ID:                 id,
		UserID:             userID,
		Subjects:           subjects,
		HourlyRateMin:      30,
		HourlyRateMax:      50,
		RatingAverage:      4.5,
		VerificationStatus: "approved",
	}
}

func TestListTutorsFiltersBySubject(t *testing.T) {
	tutorRepo := newFakeTutorRepo(
		approvedTutor("t1", "u1", "Mathematics", "Physics"),
		approvedTutor("t2", "u2", "French"),
	)
	userRepo := newFakeUserRepo(
		&entity.User{ID: "u1", FullName: "Sarah Jenkins", Email: "sarah@example.com"},
		&entity.User{ID: "u2", Email: "jean.dubois@example.com"},
	)
	uc := NewTutorUseCase(tutorRepo, userRepo, &fakeReviewRepo{}, nil)

	tutors, err := uc.ListTutors(context.Background(), repository.TutorFilter{Subject: "French"})
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "t2", tutors[0].ID)
	assert.Equal(t, "Jean Dubois", tutors[0].User.FullName)
}

func TestListTutorsExcludesUnapproved(t *testing.T) {
	pending := approvedTutor("t2", "u2", "Mathematics")
	pending.VerificationStatus = "pending"
	tutorRepo := newFakeTutorRepo(approvedTutor("t1", "u1", "Mathematics"), pending)
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", FullName: "Sarah Jenkins"})
	uc := NewTutorUseCase(tutorRepo, userRepo, &fakeReviewRepo{}, nil)

	tutors, err := uc.ListTutors(context.Background(), repository.TutorFilter{})
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "t1", tutors[0].ID)
}

func TestListTutorsEnrichmentFallsBackOnBatchFailure(t *testing.T) {
	tutorRepo := newFakeTutorRepo(approvedTutor("t1", "u1", "Mathematics"))
	userRepo := newFakeUserRepo()
	userRepo.batchErr = fmt.Errorf("deadline exceeded")
	uc := NewTutorUseCase(tutorRepo, userRepo, &fakeReviewRepo{}, nil)

	tutors, err := uc.ListTutors(context.Background(), repository.TutorFilter{})
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "Unknown Tutor", tutors[0].User.FullName)
}

func TestListTutorsDemoFallbackOnError(t *testing.T) {
	tutorRepo := newFakeTutorRepo()
	tutorRepo.listErr = fmt.Errorf("store unavailable")
	uc := NewTutorUseCase(tutorRepo, newFakeUserRepo(), &fakeReviewRepo{}, NewDemoTutorSource())

	tutors, err := uc.ListTutors(context.Background(), repository.TutorFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, tutors)
	for _, tutor := range tutors {
		require.NotNil(t, tutor.User)
		assert.NotEmpty(t, tutor.User.FullName)
		assert.Equal(t, "approved", tutor.VerificationStatus)
	}
}

func TestListTutorsDemoFallbackOnEmptyStore(t *testing.T) {
	uc := NewTutorUseCase(newFakeTutorRepo(), newFakeUserRepo(), &fakeReviewRepo{}, NewDemoTutorSource())

	tutors, err := uc.ListTutors(context.Background(), repository.TutorFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, tutors)
}

func TestListTutorsNoDemoSourcePropagatesError(t *testing.T) {
	tutorRepo := newFakeTutorRepo()
	tutorRepo.listErr = fmt.Errorf("store unavailable")
	uc := NewTutorUseCase(tutorRepo, newFakeUserRepo(), &fakeReviewRepo{}, nil)

	_, err := uc.ListTutors(context.Background(), repository.TutorFilter{})
	assert.Error(t, err)
}

func TestListTutorsNoDemoSourceEmptyStore(t *testing.T) {
	uc := NewTutorUseCase(newFakeTutorRepo(), newFakeUserRepo(), &fakeReviewRepo{}, nil)

	tutors, err := uc.ListTutors(context.Background(), repository.TutorFilter{})
	require.NoError(t, err)
	assert.Empty(t, tutors)
}

func TestGetTutorDetailResolvesDemoIDFirst(t *testing.T) {
	demo := NewDemoTutorSource()
	demoID := demo.Tutors()[0].ID
	uc := NewTutorUseCase(newFakeTutorRepo(), newFakeUserRepo(), &fakeReviewRepo{}, demo)

	tutor, err := uc.GetTutorDetail(context.Background(), demoID)
	require.NoError(t, err)
	assert.Equal(t, demoID, tutor.ID)
	assert.NotEmpty(t, tutor.User.FullName)
}

func TestGetTutorDetailReviewsDegradeToEmpty(t *testing.T) {
	tutorRepo := newFakeTutorRepo(approvedTutor("t1", "u1", "Mathematics"))
	reviewRepo := &fakeReviewRepo{listErr: fmt.Errorf("store unavailable")}
	uc := NewTutorUseCase(tutorRepo, newFakeUserRepo(), reviewRepo, nil)

	tutor, err := uc.GetTutorDetail(context.Background(), "t1")
	require.NoError(t, err)
	assert.NotNil(t, tutor.Reviews)
	assert.Empty(t, tutor.Reviews)
}

func TestGetTutorDetailUnknownID(t *testing.T) {
	uc := NewTutorUseCase(newFakeTutorRepo(), newFakeUserRepo(), &fakeReviewRepo{}, nil)

	_, err := uc.GetTutorDetail(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateTutorProfileRejectsInvertedRateRange(t *testing.T) {
	tutorRepo := newFakeTutorRepo(approvedTutor("t1", "u1", "Mathematics"))
	uc := NewTutorUseCase(tutorRepo, newFakeUserRepo(), &fakeReviewRepo{}, nil)

	_, err := uc.UpdateTutorProfile(context.Background(), "u1", UpdateTutorProfileInput{
		Subjects:      []string{"Mathematics"},
		HourlyRateMin: 80,
		HourlyRateMax: 40,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, tutorRepo.updated)
}

func TestUpdateTutorProfilePersistsChanges(t *testing.T) {
	tutorRepo := newFakeTutorRepo(approvedTutor("t1", "u1", "Mathematics"))
	uc := NewTutorUseCase(tutorRepo, newFakeUserRepo(), &fakeReviewRepo{}, nil)

	tutor, err := uc.UpdateTutorProfile(context.Background(), "u1", UpdateTutorProfileInput{
		Bio:           "Experienced tutor",
		Subjects:      []string{"Mathematics", "Calculus"},
		HourlyRateMin: 40,
		HourlyRateMax: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mathematics", "Calculus"}, tutor.Subjects)
	assert.Equal(t, 40.0, tutor.HourlyRateMin)
	require.Len(t, tutorRepo.updated, 1)
}
