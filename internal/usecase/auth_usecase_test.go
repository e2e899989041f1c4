package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/pkg/errors"
)

type fakeAuthClient struct {
	nextUID   string
	createErr error
	signInErr error
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if c.createErr != nil {
		return "", c.createErr
	}
	return c.nextUID, nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return c.nextUID, nil
}

func (c *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if c.signInErr != nil {
		return "", c.signInErr
	}
	return "id-token", nil
}

func TestRegisterTutorCreatesPendingProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	tutorRepo := newFakeTutorRepo()
	parentRepo := newFakeParentRepo()
	uc := NewAuthUseCase(userRepo, tutorRepo, parentRepo, &fakeAuthClient{nextUID: "uid-1"})

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sarah@example.com",
		Password: "long-password",
		FullName: "Sarah Jenkins",
		Role:     "tutor",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, "id-token", result.Token)

	tutor, err := tutorRepo.GetByUserID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", tutor.VerificationStatus)
}

func TestRegisterParentCreatesProfile(t *testing.T) {
	parentRepo := newFakeParentRepo()
	uc := NewAuthUseCase(newFakeUserRepo(), newFakeTutorRepo(), parentRepo, &fakeAuthClient{nextUID: "uid-2"})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "jane@example.com",
		Password: "long-password",
		FullName: "Jane Doe",
		Role:     "parent",
	})
	require.NoError(t, err)

	parent, err := parentRepo.GetByUserID(context.Background(), "uid-2")
	require.NoError(t, err)
	assert.NotEmpty(t, parent.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid-1", Email: "sarah@example.com"})
	uc := NewAuthUseCase(userRepo, newFakeTutorRepo(), newFakeParentRepo(), &fakeAuthClient{nextUID: "uid-9"})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sarah@example.com",
		Password: "long-password",
		Role:     "parent",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginInvalidCredentials(t *testing.T) {
	client := &fakeAuthClient{signInErr: fmt.Errorf("INVALID_PASSWORD")}
	uc := NewAuthUseCase(newFakeUserRepo(), newFakeTutorRepo(), newFakeParentRepo(), client)

	_, err := uc.Login(context.Background(), "sarah@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginReturnsUserRecord(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid-1", Email: "sarah@example.com", Role: "tutor"})
	uc := NewAuthUseCase(userRepo, newFakeTutorRepo(), newFakeParentRepo(), &fakeAuthClient{nextUID: "uid-1"})

	result, err := uc.Login(context.Background(), "sarah@example.com", "long-password")
	require.NoError(t, err)
	assert.Equal(t, "tutor", result.User.Role)
	assert.Equal(t, "id-token", result.Token)
}
