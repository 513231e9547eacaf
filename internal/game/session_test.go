package game

import (
	"testing"
	"time"
)

// fakeClock is a manual time source for stats stamps.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	fc := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewSession(42, WithNow(fc.Now)), fc
}

// playing returns the Playing state or fails the test.
func playing(t *testing.T, s *Session) Playing {
	t.Helper()
	p, ok := s.State().(Playing)
	if !ok {
		t.Fatalf("expected playing state, got %s", s.Phase())
	}
	return p
}

// setTimeLeft forces the clock to a given value.
func setTimeLeft(t *testing.T, s *Session, seconds int) {
	t.Helper()
	p := playing(t, s)
	p.TimeLeft = seconds
	s.state = p
}

// missTile returns a tile that is not the target.
func missTile(l Level) int {
	return (l.TargetIndex + 1) % l.TileCount()
}

func TestNewSessionStartsInStartPhase(t *testing.T) {
	s, _ := newTestSession(t)

	if s.Phase() != PhaseStart {
		t.Errorf("Phase() = %s, want start", s.Phase())
	}
	if _, ok := s.State().(Start); !ok {
		t.Errorf("State() = %T, want Start", s.State())
	}
	if _, running := s.Clock(); running {
		t.Error("no clock should run before the first game")
	}
}

func TestStartGame(t *testing.T) {
	s, fc := newTestSession(t)

	id := s.StartGame()
	p := playing(t, s)

	if p.Stats.Score != 0 || p.Stats.Level != 1 {
		t.Errorf("stats = %+v, want score 0 level 1", p.Stats)
	}
	if p.TimeLeft != StartTime {
		t.Errorf("TimeLeft = %d, want %d", p.TimeLeft, StartTime)
	}
	if p.GridSize() != 5 {
		t.Errorf("GridSize = %d, want 5", p.GridSize())
	}
	if !p.Stats.StartedAt.Equal(fc.Now()) {
		t.Errorf("StartedAt = %v, want %v", p.Stats.StartedAt, fc.Now())
	}
	if p.Stats.Ended() {
		t.Error("a fresh game should not be ended")
	}

	current, running := s.Clock()
	if !running || current != id || id == 0 {
		t.Errorf("Clock() = (%d, %v), want (%d, true)", current, running, id)
	}
}

func TestCorrectPick(t *testing.T) {
	s, _ := newTestSession(t)
	s.StartGame()
	before := playing(t, s)

	fb := s.HandleClick(before.Level.TargetIndex)
	if fb.Kind != FeedbackCorrect {
		t.Fatalf("feedback = %s, want correct", fb.Kind)
	}

	after := playing(t, s)
	if after.Stats.Level != 2 || after.Stats.Score != 1 {
		t.Errorf("stats = %+v, want level 2 score 1", after.Stats)
	}
	if after.TimeLeft != 46 {
		t.Errorf("TimeLeft = %d, want 46", after.TimeLeft)
	}
	if after.GridSize() != 5 {
		t.Errorf("GridSize = %d, want 5", after.GridSize())
	}
	if after.Level.Number != 2 {
		t.Errorf("installed level = %d, want 2", after.Level.Number)
	}
}

func TestCorrectPickCapsTime(t *testing.T) {
	s, _ := newTestSession(t)
	s.StartGame()

	tests := []struct {
		before, after int
	}{
		{45, 46},
		{59, 60},
		{60, 60},
		{0, 1},
	}

	for _, tc := range tests {
		setTimeLeft(t, s, tc.before)
		p := playing(t, s)
		s.HandleClick(p.Level.TargetIndex)
		if got := playing(t, s).TimeLeft; got != tc.after {
			t.Errorf("correct pick at %ds: TimeLeft = %d, want %d", tc.before, got, tc.after)
		}
	}
}

func TestGridGrowsEveryFiveLevels(t *testing.T) {
	s, _ := newTestSession(t)
	s.StartGame()

	for i := 0; i < 30; i++ {
		p := playing(t, s)
		if p.GridSize() != GridSize(p.Stats.Level) {
			t.Fatalf("level %d: grid %d, want %d", p.Stats.Level, p.GridSize(), GridSize(p.Stats.Level))
		}
		s.HandleClick(p.Level.TargetIndex)
	}

	if got := playing(t, s).Stats.Level; got != 31 {
		t.Errorf("Level = %d, want 31", got)
	}
	if got := playing(t, s).GridSize(); got != MaxGridSize {
		t.Errorf("GridSize = %d, want %d", got, MaxGridSize)
	}
}

func TestMissPick(t *testing.T) {
	tests := []struct {
		name          string
		before, after int
	}{
		{"plenty of time", 45, 40},
		{"exactly five", 5, 0},
		{"clamped at zero", 3, 0},
		{"already zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			s.StartGame()
			setTimeLeft(t, s, tc.before)
			before := playing(t, s)

			tile := missTile(before.Level)
			fb := s.HandleClick(tile)
			if fb.Kind != FeedbackMiss || fb.Tile != tile {
				t.Errorf("feedback = %+v, want miss on tile %d", fb, tile)
			}

			after := playing(t, s)
			if after.TimeLeft != tc.after {
				t.Errorf("TimeLeft = %d, want %d", after.TimeLeft, tc.after)
			}
			if after.Stats.Score != before.Stats.Score || after.Stats.Level != before.Stats.Level {
				t.Errorf("miss changed stats: %+v -> %+v", before.Stats, after.Stats)
			}
			if after.Level != before.Level {
				t.Error("miss should keep the current round")
			}
		})
	}
}

func TestMissToZeroKeepsPlayingUntilTick(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.StartGame()
	setTimeLeft(t, s, 3)

	s.HandleClick(missTile(playing(t, s).Level))

	p := playing(t, s)
	if p.TimeLeft != 0 {
		t.Fatalf("TimeLeft = %d, want 0", p.TimeLeft)
	}

	if s.Tick(id) {
		t.Error("tick at zero should stop the clock")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, want gameover", s.Phase())
	}
}

func TestHandleClickOutOfRange(t *testing.T) {
	s, _ := newTestSession(t)
	s.StartGame()
	before := playing(t, s)

	for _, tile := range []int{-1, before.Level.TileCount(), 1000} {
		if fb := s.HandleClick(tile); fb.Kind != FeedbackNone {
			t.Errorf("HandleClick(%d) = %s, want none", tile, fb.Kind)
		}
	}

	after := playing(t, s)
	if after.TimeLeft != before.TimeLeft || after.Stats != before.Stats {
		t.Error("out-of-range picks should not change state")
	}
}

func TestHandleClickOutsidePlay(t *testing.T) {
	s, _ := newTestSession(t)

	if fb := s.HandleClick(0); fb.Kind != FeedbackNone {
		t.Errorf("pick before start = %s, want none", fb.Kind)
	}
	if s.Phase() != PhaseStart {
		t.Errorf("Phase() = %s, want start", s.Phase())
	}

	id := s.StartGame()
	setTimeLeft(t, s, 1)
	s.Tick(id)

	over := s.State()
	if fb := s.HandleClick(0); fb.Kind != FeedbackNone {
		t.Errorf("pick after game over = %s, want none", fb.Kind)
	}
	if s.State() != over {
		t.Error("pick after game over should not change state")
	}
}

func TestTickDecrements(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.StartGame()

	for want := StartTime - 1; want >= 1; want-- {
		if !s.Tick(id) {
			t.Fatalf("clock stopped early at %d", want)
		}
		p := playing(t, s)
		if p.TimeLeft != want {
			t.Fatalf("TimeLeft = %d, want %d", p.TimeLeft, want)
		}
	}

	// TimeLeft is 1 now: the next tick ends the game
	if s.Tick(id) {
		t.Error("last tick should report the clock as stopped")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, want gameover", s.Phase())
	}
}

func TestTickAtOneEndsGame(t *testing.T) {
	s, fc := newTestSession(t)
	id := s.StartGame()
	p := playing(t, s)
	s.HandleClick(p.Level.TargetIndex)
	last := playing(t, s).Level

	setTimeLeft(t, s, 1)
	fc.Advance(30 * time.Second)
	s.Tick(id)

	over, ok := s.State().(GameOver)
	if !ok {
		t.Fatalf("State() = %T, want GameOver", s.State())
	}
	if over.Last != last {
		t.Error("game over should keep the last round")
	}
	if over.Stats.Score != 1 || over.Stats.Level != 2 {
		t.Errorf("stats = %+v, want score 1 level 2", over.Stats)
	}
	if over.Stats.Duration() != 30*time.Second {
		t.Errorf("Duration() = %v, want 30s", over.Stats.Duration())
	}
	if got := over.Stats.PicksPerMinute(); got != 2 {
		t.Errorf("PicksPerMinute() = %f, want 2", got)
	}
	if _, running := s.Clock(); running {
		t.Error("clock should stop when the game ends")
	}
	if snap := s.Snapshot(); snap.TimeLeft != 0 {
		t.Errorf("TimeLeft after game over = %d, want 0", snap.TimeLeft)
	}
}

func TestTickIgnoredAfterGameOver(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.StartGame()
	setTimeLeft(t, s, 1)
	s.Tick(id)

	over := s.State()
	if s.Tick(id) {
		t.Error("tick after game over should be ignored")
	}
	if s.State() != over {
		t.Error("tick after game over changed state")
	}
}

func TestTickIgnoredBeforeStart(t *testing.T) {
	s, _ := newTestSession(t)

	if s.Tick(1) {
		t.Error("tick before start should be ignored")
	}
	if s.Phase() != PhaseStart {
		t.Errorf("Phase() = %s, want start", s.Phase())
	}
}

func TestStaleClockIgnoredAfterRestart(t *testing.T) {
	s, _ := newTestSession(t)
	oldID := s.StartGame()
	s.Tick(oldID)

	newID := s.StartGame()
	if newID == oldID {
		t.Fatal("restart must issue a new clock ID")
	}

	if s.Tick(oldID) {
		t.Error("stale tick should be ignored")
	}
	if got := playing(t, s).TimeLeft; got != StartTime {
		t.Errorf("stale tick changed TimeLeft to %d", got)
	}

	if !s.Tick(newID) {
		t.Error("current clock should keep ticking")
	}
	if got := playing(t, s).TimeLeft; got != StartTime-1 {
		t.Errorf("TimeLeft = %d, want %d", got, StartTime-1)
	}
}

func TestCloseStopsClock(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.StartGame()

	s.Close()

	if _, running := s.Clock(); running {
		t.Error("Close() should stop the clock")
	}
	if s.Tick(id) {
		t.Error("tick after Close() should be ignored")
	}
	if got := playing(t, s).TimeLeft; got != StartTime {
		t.Errorf("TimeLeft = %d after Close(), want %d", got, StartTime)
	}
}

func TestRestartFromGameOverResets(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.StartGame()
	for i := 0; i < 4; i++ {
		s.HandleClick(playing(t, s).Level.TargetIndex)
	}
	setTimeLeft(t, s, 1)
	s.Tick(id)

	s.StartGame()
	p := playing(t, s)
	if p.Stats.Score != 0 || p.Stats.Level != 1 || p.TimeLeft != StartTime {
		t.Errorf("restart should reset, got stats %+v time %d", p.Stats, p.TimeLeft)
	}
	if p.Stats.Ended() {
		t.Error("restarted game should not carry an end time")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() []Snapshot {
		s := NewSession(2024)
		id := s.StartGame()
		var snaps []Snapshot
		for i := 0; i < 20; i++ {
			p := s.State().(Playing)
			if i%3 == 0 {
				s.HandleClick(missTile(p.Level))
			} else {
				s.HandleClick(p.Level.TargetIndex)
			}
			s.Tick(id)
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSession(t)

	snap := s.Snapshot()
	if snap.Phase != PhaseStart || snap.TargetIndex != -1 || snap.GridSize != 0 {
		t.Errorf("start snapshot = %+v", snap)
	}

	id := s.StartGame()
	p := playing(t, s)
	snap = s.Snapshot()
	if snap.Phase != PhasePlaying || snap.TimeLeft != StartTime || snap.Level != 1 {
		t.Errorf("playing snapshot = %+v", snap)
	}
	if snap.TargetIndex != p.Level.TargetIndex || snap.GridSize != 5 {
		t.Errorf("snapshot level data = %+v, want target %d grid 5", snap, p.Level.TargetIndex)
	}
	if snap.Clock != id || !snap.Ticking {
		t.Errorf("snapshot clock = (%d, %v), want (%d, true)", snap.Clock, snap.Ticking, id)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p        Phase
		expected string
	}{
		{PhaseStart, "start"},
		{PhasePlaying, "playing"},
		{PhaseGameOver, "gameover"},
		{Phase(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.p.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tc.p, got, tc.expected)
		}
	}
}
