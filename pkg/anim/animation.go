// Package anim provides the animation scheduling core: a per-object
// animation state machine (Animable) and a collection that steps many
// of them once per frame (Group).
//
// The package never reads a clock. Absolute time and frame delta are
// supplied by the caller on every Group.Step call, which makes the
// whole scheduler deterministic under synthetic timestamps. A typical
// frame loop uses pkg/timeline as the time source:
//
//	tl := timeline.New()
//	tl.Start()
//
//	// once per frame:
//	group.Step(tl.PreviousFrameTime(), tl.PreviousFrameDuration())
//	tl.NextFrame()
//
// All operations are single-threaded: Add, Remove, SetState and Step
// must run on the same goroutine (the frame loop). Callers layering a
// multi-threaded pipeline on top must synchronize externally.
package anim

// Animation is the per-frame behavior attached to an Animable.
//
// AnimationStep is called from Group.Step on every frame while the
// owning Animable is Running. elapsed is the time since the current
// run (or current repeat cycle) began; it continues across
// pause/resume and starts at zero after a restart from Stopped.
// delta is the caller-supplied duration of the current frame and is
// independent of the elapsed bookkeeping.
type Animation interface {
	AnimationStep(elapsed, delta float64)
}

// StepFunc adapts an ordinary function to the Animation interface.
type StepFunc func(elapsed, delta float64)

// AnimationStep calls f(elapsed, delta).
func (f StepFunc) AnimationStep(elapsed, delta float64) {
	f(elapsed, delta)
}

// StartListener is implemented by Animations that want to be notified
// when their Animable transitions from Stopped to Running, before the
// first AnimationStep of the new run.
type StartListener interface {
	AnimationStarted()
}

// PauseListener is implemented by Animations that want to be notified
// when their Animable transitions from Running to Paused.
type PauseListener interface {
	AnimationPaused()
}

// ResumeListener is implemented by Animations that want to be notified
// when their Animable transitions from Paused back to Running.
type ResumeListener interface {
	AnimationResumed()
}

// StopListener is implemented by Animations that want to be notified
// when their Animable transitions from Running or Paused to Stopped.
//
// Use this to finalize the visual state deterministically: at low
// frame rates the last AnimationStep may land well before the nominal
// end of the animation, so the stop notification is the reliable
// place to snap to the final pose. The notification fires exactly
// once per transition, regardless of frame-rate jitter.
type StopListener interface {
	AnimationStopped()
}
