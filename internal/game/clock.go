package game

import "time"

// TickInterval is the wall time between two clock ticks.
const TickInterval = time.Second

// ClockID identifies one countdown. Every game gets a fresh ID; zero is never
// issued, so a zero ID never matches a running clock.
type ClockID uint64

// clock is the countdown owned by a session. Only the clock whose ID matches
// and that is still running may change the time left.
type clock struct {
	id      ClockID
	running bool
}

// restart stops the current countdown and starts a new one with the next ID.
func (c *clock) restart() ClockID {
	c.stop()
	c.id++
	c.running = true
	return c.id
}

// stop cancels the countdown. Ticks carrying its ID become no-ops.
func (c *clock) stop() {
	c.running = false
}

// accepts reports whether a tick from id belongs to the running countdown.
func (c *clock) accepts(id ClockID) bool {
	return c.running && id != 0 && id == c.id
}
