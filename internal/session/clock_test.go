package session

import (
	"testing"
	"time"
)

// fakeNow is a manually advanced time source.
type fakeNow struct {
	t time.Time
}

func newFakeNow() *fakeNow {
	return &fakeNow{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeNow) Now() time.Time          { return f.t }
func (f *fakeNow) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockAccumulatesOnlyWhileRunning(t *testing.T) {
	now := newFakeNow()
	c := NewClock(now.Now)

	now.Advance(time.Minute)
	if c.Elapsed() != 0 {
		t.Errorf("stopped clock elapsed = %v, want 0", c.Elapsed())
	}

	c.Start()
	now.Advance(10 * time.Second)
	if c.Elapsed() != 10*time.Second {
		t.Errorf("Elapsed() = %v, want 10s", c.Elapsed())
	}

	c.Pause()
	now.Advance(time.Hour)
	if c.Elapsed() != 10*time.Second {
		t.Errorf("paused Elapsed() = %v, want 10s", c.Elapsed())
	}

	c.Resume()
	now.Advance(5 * time.Second)
	if c.Elapsed() != 15*time.Second {
		t.Errorf("resumed Elapsed() = %v, want 15s", c.Elapsed())
	}

	c.Stop()
	now.Advance(time.Minute)
	if c.Elapsed() != 15*time.Second {
		t.Errorf("stopped Elapsed() = %v, want 15s", c.Elapsed())
	}
}

func TestClockPauseResumeAreIdempotent(t *testing.T) {
	now := newFakeNow()
	c := NewClock(now.Now)

	c.Pause()
	if c.Paused() {
		t.Error("pausing a stopped clock should do nothing")
	}

	c.Start()
	now.Advance(2 * time.Second)
	c.Pause()
	c.Pause()
	now.Advance(2 * time.Second)
	c.Resume()
	c.Resume()
	now.Advance(2 * time.Second)

	if c.Elapsed() != 4*time.Second {
		t.Errorf("Elapsed() = %v, want 4s", c.Elapsed())
	}
}

func TestClockReset(t *testing.T) {
	now := newFakeNow()
	c := NewClock(now.Now)
	c.Start()
	now.Advance(time.Minute)
	c.Pause()

	c.Reset()
	if c.Paused() || !c.Running() {
		t.Error("Reset should leave the clock running and unpaused")
	}
	now.Advance(3 * time.Second)
	if c.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", c.Elapsed())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{999 * time.Millisecond, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{100 * time.Hour, "100:00:00"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
