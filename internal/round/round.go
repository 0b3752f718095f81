// Package round implements the per-client round state machine.
//
// There is no server authority: every subscriber receives the same
// round_start broadcast and independently polls its own clock against
// the shared deadline. The engine guarantees the ended transition fires
// exactly once per round_start, but the winner it reports is computed
// from whatever vote counts this client has observed so far.
package round

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/happydoodle/core/internal/model"
	"github.com/jonboulle/clockwork"
)

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateEnded   State = "ended"
)

const DefaultPollInterval = 200 * time.Millisecond

// Engine drives one client's view of the round lifecycle.
type Engine struct {
	mu sync.Mutex

	clock        clockwork.Clock
	pollInterval time.Duration
	logger       *slog.Logger

	state  State
	round  model.Round
	winner model.Winner

	// counts returns this client's current snapshot of the tally.
	counts func() model.Tally
	// onEnd fires exactly once per round, with the locally derived winner.
	onEnd func(model.Winner)

	cancel context.CancelFunc
}

type Option func(*Engine)

func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) { e.pollInterval = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func NewEngine(counts func() model.Tally, onEnd func(model.Winner), opts ...Option) *Engine {
	e := &Engine{
		clock:        clockwork.NewRealClock(),
		pollInterval: DefaultPollInterval,
		logger:       slog.Default(),
		state:        StateIdle,
		counts:       counts,
		onEnd:        onEnd,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Prompt() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round.Prompt
}

func (e *Engine) Winner() model.Winner {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.winner
}

// Remaining is what the countdown label shows: whole seconds, rounded
// up, never negative.
func (e *Engine) Remaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning {
		return 0
	}
	return e.round.Remaining(e.clock.Now())
}

func (e *Engine) RemainingSeconds() int {
	rem := e.Remaining()
	return int((rem + time.Second - 1) / time.Second)
}

// Drawing is permitted only while the round runs.
func (e *Engine) Active() bool {
	return e.State() == StateRunning
}

// HandleRoundStart processes a round_start broadcast. The initiator
// receives its own broadcast and goes through here like everyone else.
// Any previous round's poll is stopped and its winner reset.
func (e *Engine) HandleRoundStart(r model.Round) {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.state = StateRunning
	e.round = r
	e.winner = model.WinnerNone
	e.mu.Unlock()

	e.logger.Info("round started",
		"prompt", r.Prompt,
		"until", r.Until)

	go e.poll(ctx)
}

func (e *Engine) poll(ctx context.Context) {
	ticker := e.clock.NewTicker(e.pollInterval)
	defer ticker.Stop()

	if e.tick() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if e.tick() {
				return
			}
		}
	}
}

// tick recomputes remaining time; reports true once the round is over.
func (e *Engine) tick() bool {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return true
	}
	if e.round.Remaining(e.clock.Now()) > 0 {
		e.mu.Unlock()
		return false
	}

	e.state = StateEnded
	e.winner = e.counts().Verdict()
	winner := e.winner
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.mu.Unlock()

	e.logger.Info("round ended", "winner", winner)
	if e.onEnd != nil {
		e.onEnd(winner)
	}
	return true
}

// Stop tears the engine down on navigation away; it does not declare
// a winner.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.state = StateIdle
}
