package handler

import (
	"tutorconnect/internal/usecase"
)

var (
	authHandler      *AuthHandler
	tutorHandler     *TutorHandler
	bookingHandler   *BookingHandler
	reviewHandler    *ReviewHandler
	parentHandler    *ParentHandler
	messageHandler   *MessageHandler
	assistantHandler *AssistantHandler
	healthHandler    *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	tutorUseCase *usecase.TutorUseCase,
	bookingUseCase *usecase.BookingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	parentUseCase *usecase.ParentUseCase,
	messageUseCase *usecase.MessageUseCase,
	assistantUseCase *usecase.AssistantUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	tutorHandler = NewTutorHandler(tutorUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	parentHandler = NewParentHandler(parentUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	assistantHandler = NewAssistantHandler(assistantUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetTutorHandler() *TutorHandler {
	return tutorHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetParentHandler() *ParentHandler {
	return parentHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
