package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
	"tutorconnect/internal/adapter/api/middleware"
)

func SetupAssistantRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	assistantHandler := handler.GetAssistantHandler()

	assistant := e.Group("/v1/assistant")
	assistant.Use(authMiddleware.Authenticate)
	assistant.POST("/curriculum", assistantHandler.GenerateCurriculum)
	assistant.POST("/assignment", assistantHandler.GenerateAssignment)
	assistant.POST("/lesson-plan", assistantHandler.GenerateLessonPlan)
}
