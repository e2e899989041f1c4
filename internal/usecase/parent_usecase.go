package usecase

import (
	"context"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/logger"
)

type ParentUseCase struct {
	parentRepo repository.ParentRepository
}

func NewParentUseCase(parentRepo repository.ParentRepository) *ParentUseCase {
	return &ParentUseCase{
		parentRepo: parentRepo,
	}
}

// EnsureProfile returns the caller's parent profile, creating an empty one
// when missing. Registration normally creates it; this self-heals accounts
// that predate that step.
func (uc *ParentUseCase) EnsureProfile(ctx context.Context, userID string) (*entity.Parent, error) {
	parent, err := uc.parentRepo.GetByUserID(ctx, userID)
	if err == nil {
		return parent, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	logger.Info("Creating missing parent profile for user %s", userID)
	parent = &entity.Parent{UserID: userID}
	if err := uc.parentRepo.Create(ctx, parent); err != nil {
		return nil, err
	}

	return parent, nil
}

type UpdateParentProfileInput struct {
	Address   string
	Latitude  float64
	Longitude float64
	BudgetMin float64
	BudgetMax float64
}

func (uc *ParentUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateParentProfileInput) (*entity.Parent, error) {
	parent, err := uc.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	parent.Address = input.Address
	parent.Latitude = input.Latitude
	parent.Longitude = input.Longitude
	parent.BudgetMin = input.BudgetMin
	parent.BudgetMax = input.BudgetMax

	if err := uc.parentRepo.Update(ctx, parent); err != nil {
		return nil, err
	}

	return parent, nil
}

type AddChildInput struct {
	Name           string
	Age            int
	GradeLevel     string
	SubjectsNeeded []string
}

func (uc *ParentUseCase) AddChild(ctx context.Context, userID string, input AddChildInput) (*entity.Child, error) {
	if input.Age < 3 || input.Age > 18 {
		return nil, errors.BadRequest("Child age must be between 3 and 18", nil)
	}

	parent, err := uc.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	child := &entity.Child{
		ParentID:       parent.ID,
		Name:           input.Name,
		Age:            input.Age,
		GradeLevel:     input.GradeLevel,
		SubjectsNeeded: input.SubjectsNeeded,
	}

	if err := uc.parentRepo.CreateChild(ctx, child); err != nil {
		return nil, err
	}

	return child, nil
}

func (uc *ParentUseCase) ListChildren(ctx context.Context, userID string) ([]*entity.Child, error) {
	parent, err := uc.parentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return []*entity.Child{}, nil
		}
		return nil, err
	}

	children, err := uc.parentRepo.ListChildren(ctx, parent.ID)
	if err != nil {
		return nil, err
	}
	if children == nil {
		children = []*entity.Child{}
	}

	return children, nil
}
