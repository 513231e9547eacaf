package game

import "time"

// Timer rules, in seconds.
const (
	StartTime   = 45 // Time on the clock when a game starts
	MaxTime     = 60 // Bonuses never push the clock above this
	TimeBonus   = 1  // Added on every correct pick
	TimePenalty = 5  // Removed on every miss
)

// Phase is the coarse game mode.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// State is the session state. It is one of Start, Playing or GameOver; each
// variant carries only the fields that exist in that phase.
type State interface {
	Phase() Phase
	isState()
}

// Start is the state before the first game.
type Start struct{}

// Playing is the state of a running game.
type Playing struct {
	Stats    Stats
	TimeLeft int   // Seconds, in [0, MaxTime]
	Level    Level // Colors of the current round
}

// GameOver is the state after the clock ran out.
type GameOver struct {
	Stats Stats
	Last  Level // Round that was on screen when time ran out
}

func (Start) Phase() Phase    { return PhaseStart }
func (Playing) Phase() Phase  { return PhasePlaying }
func (GameOver) Phase() Phase { return PhaseGameOver }

func (Start) isState()    {}
func (Playing) isState()  {}
func (GameOver) isState() {}

// GridSize returns the tiles per side of the current round.
func (p Playing) GridSize() int {
	return p.Level.GridSize
}

// Stats are the running totals of one game.
type Stats struct {
	Score     int // Correct picks
	Level     int // Starts at 1, +1 per correct pick
	StartedAt time.Time
	EndedAt   time.Time // Zero while the game is running
}

// Ended reports whether the game has finished.
func (s Stats) Ended() bool {
	return !s.EndedAt.IsZero()
}

// Duration returns how long the game lasted. Zero while still running.
func (s Stats) Duration() time.Duration {
	if !s.Ended() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// PicksPerMinute returns correct picks per minute of play.
func (s Stats) PicksPerMinute() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	return float64(s.Score) / d.Minutes()
}
