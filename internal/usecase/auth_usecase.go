package usecase

import (
	"context"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tutorRepo    repository.TutorRepository
	parentRepo   repository.ParentRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tutorRepo repository.TutorRepository,
	parentRepo repository.ParentRepository,
	firebaseAuth FirebaseAuthClient,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tutorRepo:    tutorRepo,
		parentRepo:   parentRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string // "tutor" or "parent"
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates the auth account, the user record, and the role-specific
// profile. Tutor profiles start unverified and stay out of the directory
// until approved.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     input.Role,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	switch input.Role {
	case "tutor":
		tutor := &entity.Tutor{
			UserID:             uid,
			Subjects:           []string{},
			VerificationStatus: "pending",
		}
		if err := uc.tutorRepo.Create(ctx, tutor); err != nil {
			logger.Error("Failed to create tutor profile for %s: %v", uid, err)
		}
	case "parent":
		parent := &entity.Parent{UserID: uid}
		if err := uc.parentRepo.Create(ctx, parent); err != nil {
			logger.Error("Failed to create parent profile for %s: %v", uid, err)
		}
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
