package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
	"tutorconnect/internal/adapter/api/middleware"
)

func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	bookings := e.Group("/v1/bookings")
	bookings.Use(authMiddleware.Authenticate)
	bookings.POST("", bookingHandler.CreateBooking)
	bookings.GET("", bookingHandler.ListBookings)
}
