package session

import (
	"context"
	"encoding/json"
	"errors"

	ws_room "github.com/happydoodle/core/internal/delivery/ws/room"
	"github.com/happydoodle/core/internal/model"
	"github.com/happydoodle/core/internal/prompts"
	"github.com/happydoodle/core/internal/stitch"
)

var (
	ErrNotADrawer   = errors.New("spectators cannot start rounds")
	ErrNoVoterKey   = errors.New("no voter key")
	ErrAlreadyVoted = errors.New("already voted on this device")
)

// StartRound picks a random prompt, persists it on the room, and
// broadcasts the shared deadline. Local state is not touched here: the
// initiator transitions on receipt of its own broadcast like everyone
// else.
func (s *Session) StartRound(ctx context.Context) error {
	if !s.side.IsDrawer() {
		return ErrNotADrawer
	}

	prompt := prompts.Random()
	if err := s.api.SetPrompt(ctx, s.roomID, prompt); err != nil {
		return err
	}

	until := s.clock.Now().Add(s.roundDuration)
	payload, err := json.Marshal(ws_room.RoundStartPayload{
		Until:  until.UnixMilli(),
		Prompt: prompt,
	})
	if err != nil {
		return err
	}
	return s.channel.Publish(ws_room.Event{
		Event:   ws_room.EventRoundStart,
		Payload: payload,
	})
}

// CastVote writes this device's vote. The local voted flag is the only
// client-side dedupe; a fresh session can vote again and relies on the
// upsert for idempotence.
func (s *Session) CastVote(ctx context.Context, side model.Side) error {
	s.mu.Lock()
	if s.voterKey == "" {
		s.mu.Unlock()
		return ErrNoVoterKey
	}
	if s.voted {
		s.mu.Unlock()
		return ErrAlreadyVoted
	}
	voterKey := s.voterKey
	s.mu.Unlock()

	if err := s.api.Cast(ctx, model.Vote{
		RoomID:   s.roomID,
		VoterKey: voterKey,
		Side:     side,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	s.voted = true
	s.mu.Unlock()
	return nil
}

// ShareBattle stitches both surfaces into the composite, publishes it,
// and returns the shareable link. Native share and clipboard have no
// analogue here; logging the link is the degraded-but-functional path.
func (s *Session) ShareBattle(ctx context.Context) (string, error) {
	s.mu.Lock()
	battle := stitch.Battle{
		RoomID: s.roomID,
		Prompt: s.prompt,
		Counts: s.counts,
	}
	s.mu.Unlock()
	battle.Winner = s.engine.Winner()

	content, err := stitch.Compose(s.left.Image(), s.right.Image(), battle)
	if err != nil {
		return "", err
	}

	url, err := s.api.Publish(ctx, s.roomID, content)
	if err != nil {
		return "", err
	}

	s.logger.Info("battle published", "url", url)
	return url, nil
}
