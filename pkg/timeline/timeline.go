// Package timeline provides a frame timer for driving animation
// groups. It is the only package in this module that reads a wall
// clock; the scheduling core in pkg/anim consumes plain float64
// timestamps and stays deterministic.
//
// The intended frame-loop shape:
//
//	tl := timeline.New()
//	tl.Start()
//
//	// once per frame:
//	group.Step(tl.PreviousFrameTime(), tl.PreviousFrameDuration())
//	render()
//	tl.NextFrame()
package timeline

import "time"

// Timeline measures frame times relative to its Start call.
//
// PreviousFrameTime and PreviousFrameDuration are stable for the whole
// frame: they only advance when NextFrame is called, so every consumer
// within one frame sees the same timestamps.
type Timeline struct {
	// now is the clock source; replaced in tests.
	now func() time.Time

	startTime         time.Time
	previousFrameTime time.Time
	previousDuration  float64
	running           bool
}

// New creates a stopped timeline using the system clock.
func New() *Timeline {
	return &Timeline{now: time.Now}
}

// Start begins measuring time. The current moment becomes time zero
// and the previous frame duration resets to zero. Calling Start on a
// running timeline restarts it.
func (t *Timeline) Start() {
	t.startTime = t.now()
	t.previousFrameTime = t.startTime
	t.previousDuration = 0
	t.running = true
}

// Stop stops the timeline. Frame times freeze at their last values
// until Start is called again.
func (t *Timeline) Stop() {
	t.running = false
}

// Running reports whether the timeline has been started and not yet
// stopped.
func (t *Timeline) Running() bool {
	return t.running
}

// NextFrame marks the beginning of a new frame: the duration of the
// frame that just ended becomes PreviousFrameDuration and the frame
// timestamp advances. Does nothing on a stopped timeline.
func (t *Timeline) NextFrame() {
	if !t.running {
		return
	}
	now := t.now()
	t.previousDuration = now.Sub(t.previousFrameTime).Seconds()
	t.previousFrameTime = now
}

// PreviousFrameTime returns the timestamp of the current frame in
// seconds since Start. It is monotonically non-decreasing across
// NextFrame calls, which makes it suitable as the absolute time for
// anim.Group.Step.
func (t *Timeline) PreviousFrameTime() float64 {
	return t.previousFrameTime.Sub(t.startTime).Seconds()
}

// PreviousFrameDuration returns the duration of the previous frame in
// seconds, or 0 before the first NextFrame call.
func (t *Timeline) PreviousFrameDuration() float64 {
	return t.previousDuration
}
