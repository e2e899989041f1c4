package handler

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

type curriculumRequest struct {
	Subject        string `json:"subject" validate:"required"`
	GradeLevel     string `json:"grade_level" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	AdditionalInfo string `json:"additional_info"`
}

func (h *AssistantHandler) GenerateCurriculum(c echo.Context) error {
	var req curriculumRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	content, err := h.assistantUseCase.GenerateCurriculum(c.Request().Context(), usecase.CurriculumInput{
		Subject:        req.Subject,
		GradeLevel:     req.GradeLevel,
		Duration:       req.Duration,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"content": content})
}

type assignmentRequest struct {
	Topic          string `json:"topic" validate:"required"`
	Difficulty     string `json:"difficulty" validate:"required"`
	AssignmentType string `json:"assignment_type" validate:"required"`
	GradeLevel     string `json:"grade_level" validate:"required"`
	AdditionalInfo string `json:"additional_info"`
}

func (h *AssistantHandler) GenerateAssignment(c echo.Context) error {
	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	content, err := h.assistantUseCase.GenerateAssignment(c.Request().Context(), usecase.AssignmentInput{
		Topic:          req.Topic,
		Difficulty:     req.Difficulty,
		AssignmentType: req.AssignmentType,
		GradeLevel:     req.GradeLevel,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"content": content})
}

type lessonPlanRequest struct {
	Topic              string `json:"topic" validate:"required"`
	Duration           string `json:"duration" validate:"required"`
	GradeLevel         string `json:"grade_level" validate:"required"`
	LearningObjectives string `json:"learning_objectives"`
	AdditionalInfo     string `json:"additional_info"`
}

func (h *AssistantHandler) GenerateLessonPlan(c echo.Context) error {
	var req lessonPlanRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	content, err := h.assistantUseCase.GenerateLessonPlan(c.Request().Context(), usecase.LessonPlanInput{
		Topic:              req.Topic,
		Duration:           req.Duration,
		GradeLevel:         req.GradeLevel,
		LearningObjectives: req.LearningObjectives,
		AdditionalInfo:     req.AdditionalInfo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"content": content})
}
