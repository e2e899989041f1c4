package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
	"tutorconnect/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.GET("/conversations", messageHandler.ListConversations)
	messages.GET("/:userId", messageHandler.GetThread)
	messages.POST("", messageHandler.SendMessage)
}
