package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
)

// SetupWebSocketRouter registers the realtime endpoint. Auth happens inside
// the handler via the token query parameter, so no middleware is attached.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws", wsHandler.HandleWebSocket)
}
