package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pokedex/internal/api/services"
	"pokedex/internal/api/ws"
)

func setupWebSocketServer(t *testing.T) (*httptest.Server, *services.SessionService, *ws.Hub) {
	t.Helper()
	sessions := services.NewSessionService("test-secret")
	hub := ws.NewHub(zap.NewNop())
	handler := NewWebSocketHandler(sessions, hub, zap.NewNop())

	e := newEcho()
	e.GET("/api/ws", handler.HandleConnection)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, sessions, hub
}

func TestWebSocketHandler_RejectsMissingToken(t *testing.T) {
	server, _, _ := setupWebSocketServer(t)

	resp, err := http.Get(server.URL + "/api/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/ws?token=garbage")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebSocketHandler_PushesBattleUpdates(t *testing.T) {
	server, sessions, hub := setupWebSocketServer(t)

	session, err := sessions.Issue()
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws?token=" + session.Token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.IsConnected(session.TrainerID) }, time.Second, 10*time.Millisecond)
	assert.False(t, hub.IsConnected(uuid.New()))

	hub.SendBattleEvent(session.TrainerID, ws.BattleEventData{BattleID: "b1", Attacker: "pikachu", Target: "eevee", Damage: 22})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string             `json:"type"`
		Data ws.BattleEventData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, ws.MessageBattleEvent, msg.Type)
	assert.Equal(t, 22, msg.Data.Damage)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return !hub.IsConnected(session.TrainerID) }, time.Second, 10*time.Millisecond)
}
