package session

import (
	"encoding/json"
	"time"

	ws_room "github.com/happydoodle/core/internal/delivery/ws/room"
	"github.com/happydoodle/core/internal/model"
)

// celebrateDelay matches the short beat before the confetti burst.
const celebrateDelay = 80 * time.Millisecond

// HandleRaw dispatches one inbound channel frame. Malformed frames are
// dropped; there is no replay, so a missed stroke stays missing.
func (s *Session) HandleRaw(data []byte) {
	var event ws_room.Event
	if err := json.Unmarshal(data, &event); err != nil {
		s.logger.Warn("dropping malformed frame", "error", err)
		return
	}

	switch event.Event {
	case ws_room.EventStroke:
		s.handleStroke(event.Payload)
	case ws_room.EventRoundStart:
		s.handleRoundStart(event.Payload)
	case ws_room.EventVoteInsert:
		s.handleVoteInsert(event.Payload)
	default:
		s.logger.Warn("dropping unknown event", "event", event.Event)
	}
}

// handleStroke renders a finished remote gesture all at once. The
// sender receives its own broadcast too and simply repaints the same
// pixels.
func (s *Session) handleStroke(payload json.RawMessage) {
	var stroke model.Stroke
	if err := json.Unmarshal(payload, &stroke); err != nil {
		s.logger.Warn("dropping malformed stroke", "error", err)
		return
	}
	if !stroke.Side.IsDrawer() {
		return
	}
	s.Canvas(stroke.Side).ApplyStroke(stroke)
}

// handleRoundStart enters the running state. The initiator goes
// through here exactly like every other subscriber.
func (s *Session) handleRoundStart(payload json.RawMessage) {
	var start ws_room.RoundStartPayload
	if err := json.Unmarshal(payload, &start); err != nil {
		s.logger.Warn("dropping malformed round_start", "error", err)
		return
	}

	s.mu.Lock()
	s.prompt = start.Prompt
	s.mu.Unlock()

	s.engine.HandleRoundStart(model.Round{
		Prompt: start.Prompt,
		Until:  time.UnixMilli(start.Until),
	})
}

// handleVoteInsert bumps the matching local counter by one. There is
// no decrement path, and an upsert that changed an existing vote
// arrives looking like a fresh insert, so the live counter over-counts
// until the next full load.
func (s *Session) handleVoteInsert(payload json.RawMessage) {
	var insert ws_room.VoteInsertPayload
	if err := json.Unmarshal(payload, &insert); err != nil {
		s.logger.Warn("dropping malformed vote_insert", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch model.Side(insert.VoteFor) {
	case model.SideLeft:
		s.counts.Left++
	case model.SideRight:
		s.counts.Right++
	}
}

// roundEnded is the engine's exactly-once callback.
func (s *Session) roundEnded(winner model.Winner) {
	if s.onCelebrate != nil {
		fn := s.onCelebrate
		s.clock.AfterFunc(celebrateDelay, func() { fn(winner) })
	}
}
