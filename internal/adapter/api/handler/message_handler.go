package handler

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversations, err := h.messageUseCase.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

func (h *MessageHandler) GetThread(c echo.Context) error {
	otherUserID := c.Param("userId")
	if otherUserID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	userID := c.Get("uid").(string)

	messages, err := h.messageUseCase.GetThread(c.Request().Context(), userID, otherUserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.messageUseCase.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}
