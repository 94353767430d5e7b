package timeline

import (
	"math"
	"testing"
	"time"
)

// fakeClock is an adjustable clock source for deterministic tests.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Unix(1000, 0)}
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func (c *fakeClock) now() time.Time {
	return c.current
}

// TestStartResetsFrameTimes verifies Start makes the current moment
// time zero with a zero previous frame duration.
func TestStartResetsFrameTimes(t *testing.T) {
	clock := newFakeClock()
	tl := New()
	tl.now = clock.now

	tl.Start()

	if !tl.Running() {
		t.Fatal("Running: got false after Start, want true")
	}
	if tl.PreviousFrameTime() != 0 {
		t.Errorf("PreviousFrameTime: got %v, want 0", tl.PreviousFrameTime())
	}
	if tl.PreviousFrameDuration() != 0 {
		t.Errorf("PreviousFrameDuration: got %v, want 0", tl.PreviousFrameDuration())
	}
}

// TestNextFrameAdvances verifies NextFrame publishes the elapsed
// wall-clock time as the previous frame duration.
func TestNextFrameAdvances(t *testing.T) {
	clock := newFakeClock()
	tl := New()
	tl.now = clock.now
	tl.Start()

	clock.advance(16 * time.Millisecond)
	tl.NextFrame()

	if math.Abs(tl.PreviousFrameTime()-0.016) > 1e-9 {
		t.Errorf("PreviousFrameTime: got %v, want 0.016", tl.PreviousFrameTime())
	}
	if math.Abs(tl.PreviousFrameDuration()-0.016) > 1e-9 {
		t.Errorf("PreviousFrameDuration: got %v, want 0.016", tl.PreviousFrameDuration())
	}

	clock.advance(20 * time.Millisecond)
	tl.NextFrame()

	if math.Abs(tl.PreviousFrameTime()-0.036) > 1e-9 {
		t.Errorf("PreviousFrameTime: got %v, want 0.036", tl.PreviousFrameTime())
	}
	if math.Abs(tl.PreviousFrameDuration()-0.020) > 1e-9 {
		t.Errorf("PreviousFrameDuration: got %v, want 0.020", tl.PreviousFrameDuration())
	}
}

// TestFrameTimeStableWithinFrame verifies consumers within one frame
// all see the same timestamps regardless of wall-clock progress.
func TestFrameTimeStableWithinFrame(t *testing.T) {
	clock := newFakeClock()
	tl := New()
	tl.now = clock.now
	tl.Start()

	clock.advance(16 * time.Millisecond)
	tl.NextFrame()

	first := tl.PreviousFrameTime()
	clock.advance(5 * time.Millisecond)
	second := tl.PreviousFrameTime()

	if first != second {
		t.Errorf("PreviousFrameTime changed within a frame: %v then %v", first, second)
	}
}

// TestStoppedTimelineFreezes verifies NextFrame is inert after Stop.
func TestStoppedTimelineFreezes(t *testing.T) {
	clock := newFakeClock()
	tl := New()
	tl.now = clock.now
	tl.Start()

	clock.advance(16 * time.Millisecond)
	tl.NextFrame()
	tl.Stop()

	frozen := tl.PreviousFrameTime()
	clock.advance(time.Second)
	tl.NextFrame()

	if tl.Running() {
		t.Error("Running: got true after Stop, want false")
	}
	if tl.PreviousFrameTime() != frozen {
		t.Errorf("PreviousFrameTime advanced after Stop: got %v, want %v",
			tl.PreviousFrameTime(), frozen)
	}
}

// TestRestartRebasesTimeZero verifies Start on a running timeline
// restarts measurement from the current moment.
func TestRestartRebasesTimeZero(t *testing.T) {
	clock := newFakeClock()
	tl := New()
	tl.now = clock.now
	tl.Start()

	clock.advance(2 * time.Second)
	tl.NextFrame()
	tl.Start()

	if tl.PreviousFrameTime() != 0 {
		t.Errorf("PreviousFrameTime after restart: got %v, want 0", tl.PreviousFrameTime())
	}
	if tl.PreviousFrameDuration() != 0 {
		t.Errorf("PreviousFrameDuration after restart: got %v, want 0", tl.PreviousFrameDuration())
	}
}
