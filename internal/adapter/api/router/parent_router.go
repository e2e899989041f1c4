package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
	"tutorconnect/internal/adapter/api/middleware"
)

func SetupParentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	parentHandler := handler.GetParentHandler()

	parents := e.Group("/v1/parents")
	parents.Use(authMiddleware.Authenticate)
	parents.GET("/me", parentHandler.GetMyProfile)
	parents.PUT("/me", parentHandler.UpdateMyProfile)

	children := e.Group("/v1/children")
	children.Use(authMiddleware.Authenticate)
	children.POST("", parentHandler.AddChild)
	children.GET("", parentHandler.ListChildren)
}
