package game

// Snapshot captures the session state for determinism testing and logging.
type Snapshot struct {
	Phase       Phase
	Score       int
	Level       int
	TimeLeft    int
	GridSize    int // 0 outside play
	TargetIndex int // -1 outside play
	Delta       float64
	Clock       ClockID
	Ticking     bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       s.Phase(),
		TargetIndex: -1,
	}
	snap.Clock, snap.Ticking = s.Clock()

	switch st := s.state.(type) {
	case Playing:
		snap.Score = st.Stats.Score
		snap.Level = st.Stats.Level
		snap.TimeLeft = st.TimeLeft
		snap.GridSize = st.Level.GridSize
		snap.TargetIndex = st.Level.TargetIndex
		snap.Delta = st.Level.Delta
	case GameOver:
		snap.Score = st.Stats.Score
		snap.Level = st.Stats.Level
		snap.Delta = st.Last.Delta
	}

	return snap
}
