package usecase

import (
	"context"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/logger"
	"tutorconnect/pkg/utils"
)

type TutorUseCase struct {
	tutorRepo  repository.TutorRepository
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
	demo       DemoTutorSource
}

func NewTutorUseCase(
	tutorRepo repository.TutorRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	demo DemoTutorSource,
) *TutorUseCase {
	return &TutorUseCase{
		tutorRepo:  tutorRepo,
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
		demo:       demo,
	}
}

// ListTutors returns approved tutors matching the filter, each enriched with
// a guaranteed display identity. A failing or empty store falls back to the
// demo set when one is wired, so the directory is never blank.
func (uc *TutorUseCase) ListTutors(ctx context.Context, filter repository.TutorFilter) ([]*entity.Tutor, error) {
	tutors, err := uc.tutorRepo.List(ctx, filter)
	if err != nil {
		logger.Error("Tutor listing query failed: %v", err)
		if uc.demo != nil {
			return uc.demo.Tutors(), nil
		}
		return nil, err
	}

	if len(tutors) == 0 {
		if uc.demo != nil {
			return uc.demo.Tutors(), nil
		}
		return []*entity.Tutor{}, nil
	}

	uc.enrichTutors(ctx, tutors)

	return tutors, nil
}

// GetTutorDetail returns one enriched tutor plus its reviews. Demo ids are
// resolved before the store is consulted.
func (uc *TutorUseCase) GetTutorDetail(ctx context.Context, id string) (*entity.Tutor, error) {
	if uc.demo != nil {
		if tutor := uc.demo.TutorByID(id); tutor != nil {
			return tutor, nil
		}
	}

	tutor, err := uc.tutorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.enrichTutors(ctx, []*entity.Tutor{tutor})

	reviews, err := uc.reviewRepo.ListByTutorID(ctx, tutor.ID)
	if err != nil {
		logger.Warn("Failed to fetch reviews for tutor %s: %v", tutor.ID, err)
		reviews = []*entity.Review{}
	}
	tutor.Reviews = reviews

	return tutor, nil
}

func (uc *TutorUseCase) GetMyTutorProfile(ctx context.Context, userID string) (*entity.Tutor, error) {
	return uc.tutorRepo.GetByUserID(ctx, userID)
}

type UpdateTutorProfileInput struct {
	Bio                  string
	Subjects             []string
	ExperienceYears      int
	HighestQualification string
	LanguagesSpoken      []string
	HourlyRateMin        float64
	HourlyRateMax        float64
	LocationAreas        []string
}

// UpdateTutorProfile applies onboarding changes. The rate range is validated
// here so a min above max can never be persisted.
func (uc *TutorUseCase) UpdateTutorProfile(ctx context.Context, userID string, input UpdateTutorProfileInput) (*entity.Tutor, error) {
	if input.HourlyRateMin > input.HourlyRateMax {
		return nil, errors.BadRequest("Minimum hourly rate cannot exceed maximum hourly rate", nil)
	}

	tutor, err := uc.tutorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tutor.Bio = input.Bio
	tutor.Subjects = input.Subjects
	tutor.ExperienceYears = input.ExperienceYears
	tutor.HighestQualification = input.HighestQualification
	tutor.LanguagesSpoken = input.LanguagesSpoken
	tutor.HourlyRateMin = input.HourlyRateMin
	tutor.HourlyRateMax = input.HourlyRateMax
	tutor.LocationAreas = input.LocationAreas

	if err := uc.tutorRepo.Update(ctx, tutor); err != nil {
		return nil, err
	}

	return tutor, nil
}

// enrichTutors resolves display identities with one batched profile read.
// A failed batch degrades every row to the fallback name instead of failing
// the response.
func (uc *TutorUseCase) enrichTutors(ctx context.Context, tutors []*entity.Tutor) {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(tutors))
	for _, tutor := range tutors {
		if !seen[tutor.UserID] {
			seen[tutor.UserID] = true
			ids = append(ids, tutor.UserID)
		}
	}

	profiles := make(map[string]*entity.User)
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Warn("Batched profile lookup failed, using fallback names: %v", err)
	} else {
		for _, user := range users {
			profiles[user.ID] = user
		}
	}

	for _, tutor := range tutors {
		meta := &entity.UserMeta{FullName: utils.FormatDisplayName("", "")}
		if profile, ok := profiles[tutor.UserID]; ok {
			meta.FullName = utils.FormatDisplayName(profile.FullName, profile.Email)
			meta.AvatarURL = profile.AvatarURL
		}
		tutor.User = meta
	}
}
