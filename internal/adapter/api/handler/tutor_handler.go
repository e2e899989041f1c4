package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tutorconnect/internal/domain/repository"
	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/response"
)

type TutorHandler struct {
	tutorUseCase *usecase.TutorUseCase
}

func NewTutorHandler(tutorUseCase *usecase.TutorUseCase) *TutorHandler {
	return &TutorHandler{
		tutorUseCase: tutorUseCase,
	}
}

func (h *TutorHandler) ListTutors(c echo.Context) error {
	var filter repository.TutorFilter

	filter.Subject = c.QueryParam("subject")

	if minPriceStr := c.QueryParam("minPrice"); minPriceStr != "" {
		minPrice, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid minPrice value", err))
		}
		filter.MinPrice = minPrice
	}

	if maxPriceStr := c.QueryParam("maxPrice"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid maxPrice value", err))
		}
		filter.MaxPrice = maxPrice
	}

	if ratingStr := c.QueryParam("rating"); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid rating value", err))
		}
		filter.MinRating = rating
	}

	tutors, err := h.tutorUseCase.ListTutors(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutors)
}

func (h *TutorHandler) GetTutor(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Tutor ID is required", nil))
	}

	tutor, err := h.tutorUseCase.GetTutorDetail(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutor)
}

func (h *TutorHandler) GetMyProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	tutor, err := h.tutorUseCase.GetMyTutorProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutor)
}

type updateTutorProfileRequest struct {
	Bio                  string   `json:"bio"`
	Subjects             []string `json:"subjects" validate:"required,min=1"`
	ExperienceYears      int      `json:"experience_years" validate:"min=0"`
	HighestQualification string   `json:"highest_qualification"`
	LanguagesSpoken      []string `json:"languages_spoken"`
	HourlyRateMin        float64  `json:"hourly_rate_min" validate:"required,gt=0"`
	HourlyRateMax        float64  `json:"hourly_rate_max" validate:"required,gt=0"`
	LocationAreas        []string `json:"location_areas"`
}

func (h *TutorHandler) UpdateMyProfile(c echo.Context) error {
	var req updateTutorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	tutor, err := h.tutorUseCase.UpdateTutorProfile(c.Request().Context(), userID, usecase.UpdateTutorProfileInput{
		Bio:                  req.Bio,
		Subjects:             req.Subjects,
		ExperienceYears:      req.ExperienceYears,
		HighestQualification: req.HighestQualification,
		LanguagesSpoken:      req.LanguagesSpoken,
		HourlyRateMin:        req.HourlyRateMin,
		HourlyRateMax:        req.HourlyRateMax,
		LocationAreas:        req.LocationAreas,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutor)
}
