// Package session is one participant's view of a room: the drawer or
// voter "tab". It mirrors remote strokes onto local surfaces, runs the
// shared-deadline round countdown, keeps live vote counters, and
// stitches the battle image on demand.
//
// All state belongs to a single session; the mutex only separates the
// websocket read loop from caller-side pointer events.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/happydoodle/core/internal/canvas"
	ws_room "github.com/happydoodle/core/internal/delivery/ws/room"
	"github.com/happydoodle/core/internal/model"
	"github.com/happydoodle/core/internal/round"
	"github.com/jonboulle/clockwork"
)

// API is the service's HTTP surface as the session consumes it.
type API interface {
	Tally(ctx context.Context, roomID model.RoomID) (model.Tally, error)
	Cast(ctx context.Context, vote model.Vote) error
	Prompt(ctx context.Context, roomID model.RoomID) (string, error)
	SetPrompt(ctx context.Context, roomID model.RoomID, prompt string) error
	Publish(ctx context.Context, roomID model.RoomID, png []byte) (string, error)
}

// Channel is the room's broadcast channel. Inbound events arrive via
// Session.HandleRaw, wired up by the transport.
type Channel interface {
	Publish(event ws_room.Event) error
	Close() error
}

type Session struct {
	mu sync.Mutex

	roomID model.RoomID
	side   model.Side

	api     API
	channel Channel
	clock   clockwork.Clock
	logger  *slog.Logger

	left  *canvas.Canvas
	right *canvas.Canvas

	engine        *round.Engine
	roundDuration time.Duration
	pollInterval  time.Duration

	counts model.Tally
	prompt string

	color string
	width float64

	drawing bool
	path    []model.Point

	voterKey string
	voted    bool

	// onCelebrate stands in for the confetti burst; fired shortly
	// after the round ends.
	onCelebrate func(model.Winner)
}

type Option func(*Session)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithRoundDuration(d time.Duration) Option {
	return func(s *Session) { s.roundDuration = d }
}

func WithPollInterval(d time.Duration) Option {
	return func(s *Session) { s.pollInterval = d }
}

func WithCanvasSize(w, h int) Option {
	return func(s *Session) {
		s.left = canvas.New(w, h)
		s.right = canvas.New(w, h)
	}
}

func WithVoterKey(key string) Option {
	return func(s *Session) { s.voterKey = key }
}

func WithCelebration(fn func(model.Winner)) Option {
	return func(s *Session) { s.onCelebrate = fn }
}

func New(roomID model.RoomID, side model.Side, apiClient API, channel Channel, opts ...Option) *Session {
	s := &Session{
		roomID:        roomID,
		side:          side,
		api:           apiClient,
		channel:       channel,
		clock:         clockwork.NewRealClock(),
		logger:        slog.Default(),
		left:          canvas.New(canvas.DefaultWidth, canvas.DefaultHeight),
		right:         canvas.New(canvas.DefaultWidth, canvas.DefaultHeight),
		roundDuration: 30 * time.Second,
		pollInterval:  round.DefaultPollInterval,
		color:         "#000000",
		width:         6,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = round.NewEngine(s.Counts, s.roundEnded,
		round.WithClock(s.clock),
		round.WithPollInterval(s.pollInterval),
		round.WithLogger(s.logger),
	)
	return s
}

// Start performs the initial full reads: vote counts and the current
// prompt. Read failures are logged and ignored; the session still
// works from broadcasts alone.
func (s *Session) Start(ctx context.Context) {
	counts, err := s.api.Tally(ctx, s.roomID)
	if err != nil {
		s.logger.Warn("initial tally load failed", "error", err)
	} else {
		s.mu.Lock()
		s.counts = counts
		s.mu.Unlock()
	}

	prompt, err := s.api.Prompt(ctx, s.roomID)
	if err != nil {
		s.logger.Warn("prompt fetch failed", "error", err)
	} else if prompt != "" {
		s.mu.Lock()
		s.prompt = prompt
		s.mu.Unlock()
	}
}

func (s *Session) RoomID() model.RoomID { return s.roomID }
func (s *Session) Side() model.Side    { return s.side }

func (s *Session) Counts() model.Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

func (s *Session) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

func (s *Session) RoundState() round.State { return s.engine.State() }
func (s *Session) Winner() model.Winner    { return s.engine.Winner() }
func (s *Session) RemainingSeconds() int   { return s.engine.RemainingSeconds() }

func (s *Session) SetColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = color
}

func (s *Session) SetBrushWidth(width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
}

// Canvas returns the surface for a drawing side.
func (s *Session) Canvas(side model.Side) *canvas.Canvas {
	if side == model.SideRight {
		return s.right
	}
	return s.left
}

// ClearCanvases wipes both surfaces locally; nothing is broadcast.
func (s *Session) ClearCanvases() {
	s.left.Clear()
	s.right.Clear()
}

// Close tears the session down: the countdown stops and the channel
// unsubscribes. In-flight requests are not cancelled.
func (s *Session) Close() error {
	s.engine.Stop()
	return s.channel.Close()
}
