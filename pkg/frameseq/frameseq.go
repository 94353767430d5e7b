// Package frameseq provides a logical frame-index Animation for the
// pkg/anim scheduler: it maps elapsed time onto a frame counter at a
// fixed frame rate, suitable for sprite-sheet or skeletal playback
// where the renderer only needs to know which frame to show.
package frameseq

import "github.com/decker502/animable/pkg/anim"

// Sequence advances a logical frame index from StartFrame across
// FrameCount frames at FPS frames per second. The index is derived
// from elapsed time rather than accumulated per tick, so playback
// stays exact under variable frame rates, and one cycle lasts exactly
// CycleDuration seconds. Looping is scheduling policy and belongs to
// the owning Animable (repeat settings), not to the sequence.
//
// Sequence implements anim.Animation and anim.StopListener: when its
// Animable stops, the index locks to the last frame if HoldLastFrame
// is set, otherwise it resets to StartFrame.
type Sequence struct {
	// FPS is the playback rate in frames per second. Must be > 0.
	FPS float64

	// StartFrame is the first logical frame of the cycle. Sequences
	// whose leading frames are hidden start past them.
	StartFrame int

	// FrameCount is the number of frames in one cycle. Must be > 0.
	FrameCount int

	// HoldLastFrame keeps the final frame visible after the animation
	// stops; when false the index snaps back to StartFrame, which
	// suits one-shot effects that disappear when done.
	HoldLastFrame bool

	// OnFrame, when non-nil, is called once per frame-index change
	// (not once per step).
	OnFrame func(frame int)

	current int
}

// NewAnimable wraps the sequence in a stopped Animable for the given
// owner. The Animable duration is set to one cycle so the scheduler's
// repeat machinery handles looping; looping sequences pass
// repeated=true.
func (s *Sequence) NewAnimable(owner any, repeated bool, repeatCount int) *anim.Animable {
	a := anim.New(owner, s)
	a.SetDuration(s.CycleDuration())
	a.SetRepeated(repeated)
	a.SetRepeatCount(repeatCount)
	return a
}

// CycleDuration returns the length of one cycle in seconds, or 0 when
// FPS or FrameCount is unset.
func (s *Sequence) CycleDuration() float64 {
	if s.FPS <= 0 || s.FrameCount <= 0 {
		return 0
	}
	return float64(s.FrameCount) / s.FPS
}

// CurrentFrame returns the logical frame index most recently computed.
func (s *Sequence) CurrentFrame() int {
	return s.current
}

// FrameAt returns the logical frame index for a given elapsed time
// within one cycle, clamped to the cycle's last frame.
func (s *Sequence) FrameAt(elapsed float64) int {
	if s.FPS <= 0 || s.FrameCount <= 0 {
		return s.StartFrame
	}
	index := int(elapsed * s.FPS)
	if index < 0 {
		index = 0
	}
	if index >= s.FrameCount {
		index = s.FrameCount - 1
	}
	return s.StartFrame + index
}

// AnimationStep updates the frame index for the current frame.
func (s *Sequence) AnimationStep(elapsed, delta float64) {
	s.setFrame(s.FrameAt(elapsed))
}

// AnimationStarted resets the index to the first frame.
func (s *Sequence) AnimationStarted() {
	s.setFrame(s.StartFrame)
}

// AnimationStopped finalizes the index according to HoldLastFrame.
func (s *Sequence) AnimationStopped() {
	if s.HoldLastFrame && s.FrameCount > 0 {
		s.setFrame(s.StartFrame + s.FrameCount - 1)
	} else {
		s.setFrame(s.StartFrame)
	}
}

func (s *Sequence) setFrame(frame int) {
	if frame == s.current {
		return
	}
	s.current = frame
	if s.OnFrame != nil {
		s.OnFrame(frame)
	}
}
