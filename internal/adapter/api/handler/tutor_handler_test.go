package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/response"
)

type unavailableTutorRepo struct{}

func (r *unavailableTutorRepo) Create(ctx context.Context, tutor *entity.Tutor) error {
	return fmt.Errorf("store unavailable")
}

func (r *unavailableTutorRepo) GetByID(ctx context.Context, id string) (*entity.Tutor, error) {
	return nil, fmt.Errorf("store unavailable")
}

func (r *unavailableTutorRepo) GetByUserID(ctx context.Context, userID string) (*entity.Tutor, error) {
	return nil, fmt.Errorf("store unavailable")
}

func (r *unavailableTutorRepo) List(ctx context.Context, filter repository.TutorFilter) ([]*entity.Tutor, error) {
	return nil, fmt.Errorf("store unavailable")
}

func (r *unavailableTutorRepo) Update(ctx context.Context, tutor *entity.Tutor) error {
	return fmt.Errorf("store unavailable")
}

type unavailableUserRepo struct{}

func (r *unavailableUserRepo) Create(ctx context.Context, user *entity.User) error {
	return fmt.Errorf("store unavailable")
}

func (r *unavailableUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, fmt.Errorf("store unavailable")
}

func (r *unavailableUserRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	return nil, fmt.Errorf("store unavailable")
}

func (r *unavailableUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, fmt.Errorf("store unavailable")
}

func (r *unavailableUserRepo) Update(ctx context.Context, user *entity.User) error {
	return fmt.Errorf("store unavailable")
}

type unavailableReviewRepo struct{}

func (r *unavailableReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return fmt.Errorf("store unavailable")
}

func (r *unavailableReviewRepo) ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Review, error) {
	return nil, fmt.Errorf("store unavailable")
}

func TestListTutorsDemoFallbackEndToEnd(t *testing.T) {
	uc := usecase.NewTutorUseCase(
		&unavailableTutorRepo{},
		&unavailableUserRepo{},
		&unavailableReviewRepo{},
		usecase.NewDemoTutorSource(),
	)
	h := NewTutorHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tutors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListTutors(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	tutors, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, tutors)
}

func TestListTutorsRejectsMalformedPriceFilter(t *testing.T) {
	uc := usecase.NewTutorUseCase(
		&unavailableTutorRepo{},
		&unavailableUserRepo{},
		&unavailableReviewRepo{},
		nil,
	)
	h := NewTutorHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tutors?minPrice=cheap", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListTutors(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}
