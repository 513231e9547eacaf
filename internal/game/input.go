package game

// FeedbackKind tells the platform how a pick was resolved.
type FeedbackKind int

const (
	FeedbackNone    FeedbackKind = iota // Pick ignored
	FeedbackCorrect                     // Target found, next level installed
	FeedbackMiss                        // Wrong tile, time penalty applied
)

// String returns a human-readable name for the feedback kind.
func (k FeedbackKind) String() string {
	switch k {
	case FeedbackNone:
		return "none"
	case FeedbackCorrect:
		return "correct"
	case FeedbackMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Feedback is emitted by HandleClick. A miss carries the tile that should
// shake; the shake itself is up to the platform and never touches the session.
type Feedback struct {
	Kind FeedbackKind
	Tile int
}

// HandleClick resolves a pick of the given tile.
// Picks outside play or outside the grid are ignored.
func (s *Session) HandleClick(tile int) Feedback {
	p, ok := s.state.(Playing)
	if !ok || !p.Level.Contains(tile) {
		return Feedback{Kind: FeedbackNone, Tile: tile}
	}

	if p.Level.IsTarget(tile) {
		s.advanceLevel()
		return Feedback{Kind: FeedbackCorrect, Tile: tile}
	}

	s.penalize()
	return Feedback{Kind: FeedbackMiss, Tile: tile}
}
