package ws_room

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/happydoodle/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(slog.Default())
	engine := gin.New()
	NewController(hub).RegisterRoutes(engine.Group("/api"))

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv, hub
}

func dialRoom(t *testing.T, srv *httptest.Server, roomID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/room/" + roomID

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func waitSubscribers(t *testing.T, hub *Hub, roomID model.RoomID, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.Subscribers(roomID) == n
	}, time.Second, 10*time.Millisecond)
}

func TestStrokeIsRelayedToEveryoneIncludingSender(t *testing.T) {
	srv, hub := newTestServer(t)
	roomID := model.RoomID("room-a")

	sender := dialRoom(t, srv, string(roomID))
	viewer := dialRoom(t, srv, string(roomID))
	waitSubscribers(t, hub, roomID, 2)

	stroke, err := json.Marshal(model.Stroke{
		Side:  model.SideLeft,
		Path:  []model.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Color: "#000000",
		Width: 6,
	})
	require.NoError(t, err)
	frame, err := json.Marshal(Event{Event: EventStroke, Payload: stroke})
	require.NoError(t, err)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, frame))

	for _, conn := range []*websocket.Conn{sender, viewer} {
		event := readEvent(t, conn)
		assert.Equal(t, EventStroke, event.Event)

		var got model.Stroke
		require.NoError(t, json.Unmarshal(event.Payload, &got))
		assert.Equal(t, model.SideLeft, got.Side)
		assert.Len(t, got.Path, 2)
	}
}

func TestRoundStartIsRelayed(t *testing.T) {
	srv, hub := newTestServer(t)
	roomID := model.RoomID("room-a")

	initiator := dialRoom(t, srv, string(roomID))
	viewer := dialRoom(t, srv, string(roomID))
	waitSubscribers(t, hub, roomID, 2)

	payload, err := json.Marshal(RoundStartPayload{Until: 1756723230000, Prompt: "A cat surfing"})
	require.NoError(t, err)
	frame, err := json.Marshal(Event{Event: EventRoundStart, Payload: payload})
	require.NoError(t, err)
	require.NoError(t, initiator.WriteMessage(websocket.TextMessage, frame))

	event := readEvent(t, viewer)
	assert.Equal(t, EventRoundStart, event.Event)

	var got RoundStartPayload
	require.NoError(t, json.Unmarshal(event.Payload, &got))
	assert.Equal(t, int64(1756723230000), got.Until)
	assert.Equal(t, "A cat surfing", got.Prompt)
}

func TestUnknownAndMalformedFramesAreDropped(t *testing.T) {
	srv, hub := newTestServer(t)
	roomID := model.RoomID("room-a")

	sender := dialRoom(t, srv, string(roomID))
	waitSubscribers(t, hub, roomID, 1)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"event":"eval","payload":{}}`)))

	frame, err := json.Marshal(Event{Event: EventStroke, Payload: json.RawMessage(`{"side":"left","path":[],"color":"#000","width":1}`)})
	require.NoError(t, err)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, frame))

	event := readEvent(t, sender)
	assert.Equal(t, EventStroke, event.Event)
}

func TestNotifyVoteInsertReachesSubscribers(t *testing.T) {
	srv, hub := newTestServer(t)
	roomID := model.RoomID("room-a")

	viewer := dialRoom(t, srv, string(roomID))
	waitSubscribers(t, hub, roomID, 1)

	hub.NotifyVoteInsert(roomID, model.SideRight)

	event := readEvent(t, viewer)
	assert.Equal(t, EventVoteInsert, event.Event)

	var got VoteInsertPayload
	require.NoError(t, json.Unmarshal(event.Payload, &got))
	assert.Equal(t, "right", got.VoteFor)
}

func TestRoomsAreIsolated(t *testing.T) {
	srv, hub := newTestServer(t)

	inRoom := dialRoom(t, srv, "room-a")
	outsider := dialRoom(t, srv, "room-b")
	waitSubscribers(t, hub, "room-a", 1)
	waitSubscribers(t, hub, "room-b", 1)

	hub.NotifyVoteInsert("room-a", model.SideLeft)

	event := readEvent(t, inRoom)
	assert.Equal(t, EventVoteInsert, event.Event)

	require.NoError(t, outsider.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := outsider.ReadMessage()
	assert.Error(t, err)
}

func TestDisconnectRemovesSubscriber(t *testing.T) {
	srv, hub := newTestServer(t)
	roomID := model.RoomID("room-a")

	conn := dialRoom(t, srv, string(roomID))
	waitSubscribers(t, hub, roomID, 1)

	conn.Close()
	waitSubscribers(t, hub, roomID, 0)
}
