package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pokedex/internal/logging"
	"pokedex/internal/metrics"
)

const (
	MessageBattleUpdate = "battle_update"
	MessageBattleEvent  = "battle_event"

	writeWait = 10 * time.Second
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BattleEventData describes a single hit so clients can play the shake
// feedback before the updated arena arrives.
type BattleEventData struct {
	BattleID string `json:"battleId"`
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Damage   int    `json:"damage"`
}

// Conn is the subset of *websocket.Conn the hub writes to.
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type client struct {
	conn Conn
	mu   sync.Mutex
}

type Hub struct {
	connections map[uuid.UUID]*client
	mu          sync.RWMutex
	logger      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*client),
		logger:      logging.Component(logger, "ws-hub"),
	}
}

// Register attaches conn to the trainer, closing any previous connection.
func (h *Hub) Register(trainerID uuid.UUID, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.connections[trainerID]; exists && old.conn != conn {
		_ = old.conn.Close()
	}
	h.connections[trainerID] = &client{conn: conn}
	metrics.ConnectedTrainers(len(h.connections))
	h.logger.Info("trainer connected",
		zap.String("trainer_id", trainerID.String()),
		zap.Int("connections", len(h.connections)))
}

// Unregister closes and forgets conn if it is still the trainer's current
// connection.
func (h *Hub) Unregister(trainerID uuid.UUID, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, exists := h.connections[trainerID]; exists && c.conn == conn {
		_ = c.conn.Close()
		delete(h.connections, trainerID)
		metrics.ConnectedTrainers(len(h.connections))
		h.logger.Info("trainer disconnected",
			zap.String("trainer_id", trainerID.String()),
			zap.Int("connections", len(h.connections)))
	}
}

func (h *Hub) SendToTrainer(trainerID uuid.UUID, msg Message) error {
	h.mu.RLock()
	c, exists := h.connections[trainerID]
	h.mu.RUnlock()

	if !exists {
		return nil
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) SendBattleUpdate(trainerID uuid.UUID, arena interface{}) error {
	return h.SendToTrainer(trainerID, Message{Type: MessageBattleUpdate, Data: arena})
}

func (h *Hub) SendBattleEvent(trainerID uuid.UUID, event BattleEventData) error {
	return h.SendToTrainer(trainerID, Message{Type: MessageBattleEvent, Data: event})
}

func (h *Hub) IsConnected(trainerID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[trainerID]
	return exists
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
