package session

import (
	"fmt"
	"time"
)

// Clock accumulates play time while running and not paused.
// The zero value is stopped; call Start to begin counting.
type Clock struct {
	now     func() time.Time
	elapsed time.Duration
	since   time.Time // start of the current running stretch
	running bool
	paused  bool
}

// NewClock creates a stopped clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start resumes counting from the accumulated total and clears any pause.
func (c *Clock) Start() {
	c.since = c.now()
	c.running = true
	c.paused = false
}

// Reset zeroes the total and starts counting again.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.Start()
}

// Stop freezes the total. Pause state is cleared.
func (c *Clock) Stop() {
	c.flush()
	c.running = false
	c.paused = false
}

// Pause stops accumulating until Resume.
func (c *Clock) Pause() {
	if !c.running || c.paused {
		return
	}
	c.flush()
	c.paused = true
}

// Resume continues after Pause. It is a no-op when not paused.
func (c *Clock) Resume() {
	if !c.running || !c.paused {
		return
	}
	c.since = c.now()
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Running reports whether the clock has been started and not stopped.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the accumulated play time.
func (c *Clock) Elapsed() time.Duration {
	if c.running && !c.paused {
		return c.elapsed + c.now().Sub(c.since)
	}
	return c.elapsed
}

func (c *Clock) flush() {
	if c.running && !c.paused {
		t := c.now()
		c.elapsed += t.Sub(c.since)
		c.since = t
	}
}

// FormatElapsed renders d as HH:MM:SS, truncating to whole seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
