// Package ws_room is the per-room broadcast channel. Anything a
// subscriber sends (stroke, round_start) is re-broadcast to every
// current subscriber of that room, sender included; vote_insert events
// are pushed by the vote controller. Delivery is best effort: slow
// clients are dropped, nothing is replayed.
package ws_room

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/happydoodle/core/internal/model"
)

const (
	EventStroke     = "stroke"
	EventRoundStart = "round_start"
	EventVoteInsert = "vote_insert"
)

type Event struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type StrokePayload = model.Stroke

type RoundStartPayload struct {
	// Until is the absolute deadline in unix milliseconds; every client
	// computes remaining time from it against its own clock.
	Until  int64  `json:"until"`
	Prompt string `json:"prompt"`
}

type VoteInsertPayload struct {
	VoteFor string `json:"vote_for"`
}

type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	RoomID model.RoomID
}

type Hub struct {
	mu sync.RWMutex

	// Sets of clients per room.
	rooms map[model.RoomID]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[model.RoomID]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.RoomID]; !ok {
		h.rooms[client.RoomID] = make(map[*Client]bool)
	}
	h.rooms[client.RoomID][client] = true

	h.logger.Info("client subscribed", "room_id", client.RoomID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[client.RoomID]; ok {
		if room[client] {
			delete(room, client)
			close(client.Send)
		}
		if len(room) == 0 {
			delete(h.rooms, client.RoomID)
		}
	}
	h.logger.Info("client unsubscribed", "room_id", client.RoomID)
}

// Subscribers reports the current subscriber count of a room.
func (h *Hub) Subscribers(roomID model.RoomID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) BroadcastToRoom(roomID model.RoomID, event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "error", err, "event", event.Event)
		return
	}
	h.broadcastRaw(roomID, messageBytes)
}

func (h *Hub) broadcastRaw(roomID model.RoomID, messageBytes []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[roomID]; ok {
		for client := range clients {
			select {
			case client.Send <- messageBytes:
			default:
				close(client.Send)
				delete(h.rooms[roomID], client)
			}
		}
	}
}

// NotifyVoteInsert pushes a row-insert notification to everyone
// subscribed to the room.
func (h *Hub) NotifyVoteInsert(roomID model.RoomID, side model.Side) {
	payload, _ := json.Marshal(VoteInsertPayload{VoteFor: string(side)})
	h.BroadcastToRoom(roomID, Event{
		Event:   EventVoteInsert,
		Payload: payload,
	})
}

// StartClientReading relays everything a subscriber publishes back to
// the whole room. The sender gets its own message too: a round
// initiator does not special-case its own round_start.
func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			h.logger.Warn("dropping malformed event", "room_id", client.RoomID, "error", err)
			continue
		}
		switch event.Event {
		case EventStroke, EventRoundStart:
			h.broadcastRaw(client.RoomID, data)
		default:
			h.logger.Warn("dropping unknown event", "room_id", client.RoomID, "event", event.Event)
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
