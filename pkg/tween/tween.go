// Package tween provides a float-value interpolation Animation for
// the pkg/anim scheduler, with easing curves from
// github.com/fogleman/ease selectable by name.
package tween

import "github.com/decker502/animable/pkg/anim"

// Tween interpolates a float64 value from From to To over Duration
// seconds, shaping the progress with an easing curve, and feeds every
// intermediate value into Apply.
//
// Tween implements anim.Animation and anim.StopListener: when its
// Animable stops (including auto-stop on duration exhaustion), the
// final value is applied once more. This keeps the end state exact
// even when the frame rate is too low for a step to land near the
// nominal end of the animation.
type Tween struct {
	// From and To are the interpolation endpoints.
	From float64
	To   float64

	// Duration is the tween length in seconds; it should match the
	// duration of the owning Animable. Non-positive duration pins the
	// value at To.
	Duration float64

	// Ease shapes the normalized progress; nil means linear.
	Ease Easing

	// Apply receives every interpolated value. Must be non-nil.
	Apply func(value float64)
}

// NewAnimable wraps the tween in a stopped Animable for the given
// owner, with duration, repeat and repeat count configured.
func (t *Tween) NewAnimable(owner any, repeated bool, repeatCount int) *anim.Animable {
	a := anim.New(owner, t)
	a.SetDuration(t.Duration)
	a.SetRepeated(repeated)
	a.SetRepeatCount(repeatCount)
	return a
}

// Value returns the tween value at the given elapsed time.
func (t *Tween) Value(elapsed float64) float64 {
	progress := 1.0
	if t.Duration > 0 {
		progress = elapsed / t.Duration
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	if t.Ease != nil {
		progress = t.Ease(progress)
	}
	return t.From + (t.To-t.From)*progress
}

// AnimationStep applies the interpolated value for the current frame.
func (t *Tween) AnimationStep(elapsed, delta float64) {
	t.Apply(t.Value(elapsed))
}

// AnimationStopped snaps the value to the final endpoint.
func (t *Tween) AnimationStopped() {
	t.Apply(t.To)
}
