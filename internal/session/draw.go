package session

import (
	"encoding/json"

	ws_room "github.com/happydoodle/core/internal/delivery/ws/room"
	"github.com/happydoodle/core/internal/model"
)

// PointerDown starts a gesture. Only the session's own surface, and
// only while a round runs. Both checks are client-side; nothing
// server-side re-verifies them.
func (s *Session) PointerDown(side model.Side, p model.Point) {
	if !s.engine.Active() || s.side != side {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawing = true
	s.path = []model.Point{p}
}

// PointerMove appends a point and echoes only the newest segment
// locally; the full stroke goes out at pointer-up.
func (s *Session) PointerMove(side model.Side, p model.Point) {
	s.mu.Lock()
	if !s.drawing || s.side != side {
		s.mu.Unlock()
		return
	}
	s.path = append(s.path, p)
	tail := make([]model.Point, len(s.path))
	copy(tail, s.path)
	color, width := s.color, s.width
	s.mu.Unlock()

	s.Canvas(side).ApplySegment(tail, color, width)
}

// PointerUp finalises the gesture: the whole accumulated path is
// packaged into a single stroke broadcast. Pointer-leave takes the
// same path.
func (s *Session) PointerUp(side model.Side) {
	s.mu.Lock()
	if !s.drawing || s.side != side {
		s.mu.Unlock()
		return
	}
	s.drawing = false
	stroke := model.Stroke{
		Side:  side,
		Path:  s.path,
		Color: s.color,
		Width: s.width,
	}
	s.path = nil
	s.mu.Unlock()

	payload, err := json.Marshal(stroke)
	if err != nil {
		s.logger.Warn("failed to marshal stroke", "error", err)
		return
	}
	if err := s.channel.Publish(ws_room.Event{
		Event:   ws_room.EventStroke,
		Payload: payload,
	}); err != nil {
		// Lost broadcast means permanently missing ink on remote
		// views; there is no recovery path.
		s.logger.Warn("stroke broadcast failed", "error", err)
	}
}
