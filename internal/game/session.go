package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/huehunt/internal/core"
)

// Session runs one play-through at a time. It is not safe for concurrent use;
// the platform delivers events to it one by one.
type Session struct {
	rng   *rand.Rand
	now   func() time.Time
	state State
	clock clock
}

// Option configures a Session.
type Option func(*Session)

// WithNow sets the time source used for game start and end stamps.
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a session in the start phase.
// The seed drives every generated level; 0 seeds from the current time.
func NewSession(seed int64, opts ...Option) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		rng:   rand.New(rand.NewSource(seed)),
		now:   time.Now,
		state: Start{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase()
}

// Clock returns the ID of the running countdown.
// The boolean is false when no countdown is running.
func (s *Session) Clock() (ClockID, bool) {
	return s.clock.id, s.clock.running
}

// StartGame discards any previous game and starts a new one at level 1.
// The old countdown is stopped before the new one starts; the returned ID is
// the one the platform must attach to its ticks.
func (s *Session) StartGame() ClockID {
	s.state = Playing{
		Stats: Stats{
			Score:     0,
			Level:     1,
			StartedAt: s.now(),
		},
		TimeLeft: StartTime,
		Level:    Generate(1, s.rng),
	}
	return s.clock.restart()
}

// Tick advances the countdown by one second.
// Ticks from a stopped or replaced countdown, or outside play, are ignored.
// Returns true while the countdown is still running and the next tick should
// be scheduled.
func (s *Session) Tick(id ClockID) bool {
	p, ok := s.state.(Playing)
	if !ok || !s.clock.accepts(id) {
		return false
	}

	if p.TimeLeft <= 1 {
		p.TimeLeft = 0
		s.state = p
		s.endGame()
		return false
	}

	p.TimeLeft--
	s.state = p
	return true
}

// advanceLevel applies a correct pick.
func (s *Session) advanceLevel() {
	p, ok := s.state.(Playing)
	if !ok {
		return
	}

	p.Stats.Level++
	p.Stats.Score++
	p.TimeLeft = core.Min(MaxTime, p.TimeLeft+TimeBonus)
	p.Level = Generate(p.Stats.Level, s.rng)
	s.state = p
}

// penalize applies a miss. Reaching zero does not end the game; the next
// clock tick does.
func (s *Session) penalize() {
	p, ok := s.state.(Playing)
	if !ok {
		return
	}

	p.TimeLeft = core.Max(0, p.TimeLeft-TimePenalty)
	s.state = p
}

// endGame stops the countdown and keeps the last round for the summary.
func (s *Session) endGame() {
	p, ok := s.state.(Playing)
	if !ok {
		return
	}

	s.clock.stop()
	p.Stats.EndedAt = s.now()
	s.state = GameOver{
		Stats: p.Stats,
		Last:  p.Level,
	}
}

// Close stops the countdown of a session that is being torn down.
// Pending ticks are ignored afterwards; the state is left as it was.
func (s *Session) Close() {
	s.clock.stop()
}
