package handler

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/response"
	"tutorconnect/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	TutorID string `json:"tutor_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), userID, usecase.CreateReviewInput{
		TutorID: req.TutorID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	tutorID := c.Param("tutorId")
	if tutorID == "" {
		return response.Error(c, errors.BadRequest("Tutor ID is required", nil))
	}

	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), tutorID)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	total := len(reviews)

	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, reviews[start:end], int64(total), params.Page, params.PageSize)
}
