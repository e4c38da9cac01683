package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/todoly/backend/internal/core/ports"
	"github.com/todoly/backend/internal/infrastructure/logger"
	"github.com/todoly/backend/internal/transport/http/dto"
)

type TodoStreamHandler struct {
	broker ports.TodoEventBroker
	logger *logger.Logger
}

func NewTodoStreamHandler(broker ports.TodoEventBroker, logger *logger.Logger) *TodoStreamHandler {
	return &TodoStreamHandler{broker: broker, logger: logger}
}

// RequireUpgrade rejects plain HTTP requests on websocket routes.
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return c.SendStatus(fiber.StatusUpgradeRequired)
}

// Handle writes every todo event as a JSON text frame until the client goes
// away or the broker is closed.
func (h *TodoStreamHandler) Handle(c *websocket.Conn) {
	events, unsubscribe := h.broker.Subscribe()
	defer unsubscribe()

	remote := c.RemoteAddr().String()
	h.logger.Infow("todo_stream_open", "remote", remote)

	// Client frames are ignored; reading only detects disconnects.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()
	defer func() {
		_ = c.Close()
		<-gone
	}()

	for {
		select {
		case <-gone:
			h.logger.Infow("todo_stream_client_closed", "remote", remote)
			return
		case ev, ok := <-events:
			if !ok {
				h.logger.Infow("todo_stream_broker_closed", "remote", remote)
				_ = c.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			payload, err := dto.JSON.Marshal(ev)
			if err != nil {
				h.logger.Errorw("todo_stream_marshal_failed", "error", err)
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Warnw("todo_stream_write_failed", "remote", remote, "error", err)
				return
			}
		}
	}
}
