package handler

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/response"
)

type ParentHandler struct {
	parentUseCase *usecase.ParentUseCase
}

func NewParentHandler(parentUseCase *usecase.ParentUseCase) *ParentHandler {
	return &ParentHandler{
		parentUseCase: parentUseCase,
	}
}

func (h *ParentHandler) GetMyProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	parent, err := h.parentUseCase.EnsureProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, parent)
}

type updateParentProfileRequest struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	BudgetMin float64 `json:"budget_min"`
	BudgetMax float64 `json:"budget_max"`
}

func (h *ParentHandler) UpdateMyProfile(c echo.Context) error {
	var req updateParentProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	parent, err := h.parentUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateParentProfileInput{
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		BudgetMin: req.BudgetMin,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, parent)
}

type addChildRequest struct {
	Name           string   `json:"name" validate:"required"`
	Age            int      `json:"age" validate:"required,min=3,max=18"`
	GradeLevel     string   `json:"grade_level"`
	SubjectsNeeded []string `json:"subjects_needed"`
}

func (h *ParentHandler) AddChild(c echo.Context) error {
	var req addChildRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	child, err := h.parentUseCase.AddChild(c.Request().Context(), userID, usecase.AddChildInput{
		Name:           req.Name,
		Age:            req.Age,
		GradeLevel:     req.GradeLevel,
		SubjectsNeeded: req.SubjectsNeeded,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, child)
}

func (h *ParentHandler) ListChildren(c echo.Context) error {
	userID := c.Get("uid").(string)

	children, err := h.parentUseCase.ListChildren(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, children)
}
