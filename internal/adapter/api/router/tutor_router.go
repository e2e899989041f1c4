package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
	"tutorconnect/internal/adapter/api/middleware"
)

func SetupTutorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	tutorHandler := handler.GetTutorHandler()

	// Static /me routes win over /:id in echo's router.
	e.GET("/v1/tutors/me", tutorHandler.GetMyProfile, authMiddleware.Authenticate)
	e.PUT("/v1/tutors/me", tutorHandler.UpdateMyProfile, authMiddleware.Authenticate)

	tutors := e.Group("/v1/tutors")
	tutors.Use(authMiddleware.OptionalAuthenticate)
	tutors.GET("", tutorHandler.ListTutors)
	tutors.GET("/:id", tutorHandler.GetTutor)
}
