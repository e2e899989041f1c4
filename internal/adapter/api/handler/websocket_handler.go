package handler

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "tutorconnect/internal/infrastructure/websocket"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/response"
)

type WebSocketHandler struct {
	wsManager  *ws.Manager
	authClient *auth.Client
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, authClient *auth.Client) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:  wsManager,
		authClient: authClient,
	}
}

// HandleWebSocket upgrades the connection for a user identified by the token
// query parameter. Browsers cannot set headers on websocket requests, so the
// ID token arrives in the query string instead of the Authorization header.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	idToken := c.QueryParam("token")
	if idToken == "" {
		return response.Error(c, errors.Unauthorized("Token is required", nil))
	}

	token, err := h.authClient.VerifyIDToken(c.Request().Context(), idToken)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upgrade connection", err))
	}

	client := &ws.Client{
		UserID: token.UID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
