package handler

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	TutorID            string  `json:"tutor_id" validate:"required"`
	ChildID            string  `json:"child_id"`
	Subject            string  `json:"subject" validate:"required"`
	ScheduledDate      string  `json:"scheduled_date" validate:"required"`
	ScheduledStartTime string  `json:"scheduled_start_time" validate:"required"`
	ScheduledEndTime   string  `json:"scheduled_end_time" validate:"required"`
	Notes              string  `json:"notes"`
	Price              float64 `json:"price" validate:"required,gt=0"`
	LocationAddress    string  `json:"location_address"`
	LocationLat        float64 `json:"location_lat"`
	LocationLng        float64 `json:"location_lng"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	session, err := h.bookingUseCase.CreateBooking(c.Request().Context(), userID, usecase.CreateBookingInput{
		TutorID:            req.TutorID,
		ChildID:            req.ChildID,
		Subject:            req.Subject,
		ScheduledDate:      req.ScheduledDate,
		ScheduledStartTime: req.ScheduledStartTime,
		ScheduledEndTime:   req.ScheduledEndTime,
		Notes:              req.Notes,
		Price:              req.Price,
		LocationAddress:    req.LocationAddress,
		LocationLat:        req.LocationLat,
		LocationLng:        req.LocationLng,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, session)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID := c.Get("uid").(string)

	sessions, err := h.bookingUseCase.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sessions)
}
