package handler

import (
	"github.com/heversonalves/canon/internal/pkg/logger"
	internalWS "github.com/heversonalves/canon/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SessionFeedHandler exposes the websocket feed that carries study-session
// update events to connected readers.
type SessionFeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewSessionFeedHandler(hub *internalWS.Hub, log logger.ILogger) *SessionFeedHandler {
	return &SessionFeedHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *SessionFeedHandler) ServeWs(c *fiber.Ctx) error {
	// Upgrade via Fiber WebSocket Middleware
	// We handle the upgrade here using the helper which automatically hijacks the connection
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SessionFeedHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("SessionFeedHandler", "WebSocket session ended", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *SessionFeedHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws/study", h.ServeWs)
}
