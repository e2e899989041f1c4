package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupTutorRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupParentRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupMaterialRouter(e, authMiddleware)
	SetupAssistantRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
