package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pokedex/internal/api/services"
	"pokedex/internal/api/ws"
	"pokedex/internal/logging"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type WebSocketHandler struct {
	sessionService *services.SessionService
	hub            *ws.Hub
	upgrader       websocket.Upgrader
	logger         *zap.Logger
}

func NewWebSocketHandler(sessionService *services.SessionService, hub *ws.Hub, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		sessionService: sessionService,
		hub:            hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logging.Component(logger, "ws"),
	}
}

// HandleConnection godoc
// @Summary Battle updates
// @Description Websocket pushing battle_event and battle_update messages for the trainer
// @Tags arena
// @Param token query string true "Trainer token"
// @Success 101
// @Failure 401 {object} map[string]string
// @Router /api/ws [get]
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		token = strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	}

	trainerID, err := h.sessionService.Parse(token)
	if err != nil {
		return ErrUnauthorized(c)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return nil
	}

	h.hub.Register(trainerID, conn)
	defer h.hub.Unregister(trainerID, conn)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket closed", zap.String("trainer_id", trainerID.String()), zap.Error(err))
			}
			return nil
		}
	}
}
