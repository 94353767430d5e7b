package anim

// Animable is one object's animation state machine. It tracks state,
// duration, repeat policy, and elapsed-time bookkeeping, and delegates
// the actual per-frame effect to its Animation.
//
// An Animable is attached to exactly one owning object (an opaque
// scene entity handle) for its whole lifetime, and belongs to at most
// one Group at a time. A new Animable is a stopped, non-repeating
// animation with infinite duration.
type Animable struct {
	owner     any
	animation Animation
	group     *Group

	// duration is the length of one animation cycle in seconds.
	// Zero means an infinite, non-repeating animation.
	duration float64

	// repeated enables restarting the cycle when duration is exceeded;
	// repeatCount limits the number of cycles (0 = unlimited).
	repeated    bool
	repeatCount int

	currentState  State
	previousState State

	// startTime and pauseTime are absolute-time anchors on the
	// caller's frame clock. lastTime is the absolute time of this
	// member's most recent step, used to anchor a pause.
	startTime float64
	pauseTime float64
	lastTime  float64

	// repeats counts completed cycles since the last restart from
	// Stopped.
	repeats int

	// startPending and resumePending defer time anchoring to the next
	// Group.Step, which is the first point where the caller's clock is
	// visible again after a state change.
	startPending  bool
	resumePending bool
}

// New creates a stopped Animable for the given owning object, driven
// by the given Animation.
//
// Parameters:
//   - owner: the scene entity this Animable animates; treated as an
//     opaque handle and returned by Owner()
//   - animation: the per-frame behavior; may additionally implement
//     any of the listener interfaces for transition notifications
//
// Returns:
//   - *Animable: the new Animable, in state Stopped, duration 0,
//     repeat disabled, not in any Group
func New(owner any, animation Animation) *Animable {
	return &Animable{
		owner:     owner,
		animation: animation,
	}
}

// Owner returns the owning object handle passed to New.
func (a *Animable) Owner() any {
	return a.owner
}

// Animation returns the per-frame behavior passed to New.
func (a *Animable) Animation() Animation {
	return a.animation
}

// Group returns the group this Animable belongs to, or nil.
func (a *Animable) Group() *Group {
	return a.group
}

// Detach removes this Animable from its group, if any. The Animable
// itself stays valid and can be added to a group again.
func (a *Animable) Detach() {
	if a.group != nil {
		a.group.Remove(a)
	}
}

// State returns the current animation state.
func (a *Animable) State() State {
	return a.currentState
}

// PreviousState returns the state the Animable was in before its most
// recent effective transition. Listener implementations can use it to
// tell which state the animation is leaving.
func (a *Animable) PreviousState() State {
	return a.previousState
}

// Duration returns the duration of one animation cycle in seconds.
func (a *Animable) Duration() float64 {
	return a.duration
}

// SetDuration sets the duration of one animation cycle in seconds.
// Zero (the default) means an infinite animation that only an
// explicit SetState(Stopped) ends.
//
// SetDuration is meant to be called by the Animation implementor when
// wiring up its Animable, not flipped around by external callers.
func (a *Animable) SetDuration(duration float64) {
	a.duration = duration
}

// Repeated reports whether the animation restarts its cycle when the
// duration is exceeded.
func (a *Animable) Repeated() bool {
	return a.repeated
}

// SetRepeated enables or disables repeating. Default is false.
func (a *Animable) SetRepeated(repeated bool) {
	a.repeated = repeated
}

// RepeatCount returns the repeat cycle limit; 0 means unlimited.
func (a *Animable) RepeatCount() int {
	return a.repeatCount
}

// SetRepeatCount limits how many cycles a repeated animation runs
// before stopping. 0 (the default) means unlimited; negative counts
// are clamped to 0. Has effect only when repeating is enabled.
func (a *Animable) SetRepeatCount(count int) {
	if count < 0 {
		count = 0
	}
	a.repeatCount = count
}

// SetState requests a state transition.
//
// The transition rules are:
//   - Stopped → Running restarts the animation from the beginning
//   - Paused → Running continues from the paused position
//   - Stopped → Paused is ignored: a stopped animation cannot be
//     pre-paused and stays Stopped, with no notification
//   - same → same is a no-op, with no notification
//
// Every effective transition fires the matching listener notification
// (started/paused/resumed/stopped) exactly once, synchronously, if the
// Animation implements the corresponding interface.
func (a *Animable) SetState(state State) {
	if state == a.currentState {
		return
	}
	if a.currentState == Stopped && state == Paused {
		return
	}

	prev := a.currentState
	a.previousState = prev
	a.currentState = state
	if a.group != nil {
		a.group.stateChanged(prev, state)
	}

	switch {
	case state == Running && prev == Stopped:
		a.repeats = 0
		a.startPending = true
		a.resumePending = false
		if l, ok := a.animation.(StartListener); ok {
			l.AnimationStarted()
		}
	case state == Running && prev == Paused:
		a.resumePending = true
		if l, ok := a.animation.(ResumeListener); ok {
			l.AnimationResumed()
		}
	case state == Paused:
		a.pauseTime = a.lastTime
		if l, ok := a.animation.(PauseListener); ok {
			l.AnimationPaused()
		}
	case state == Stopped:
		a.startPending = false
		a.resumePending = false
		if l, ok := a.animation.(StopListener); ok {
			l.AnimationStopped()
		}
	}
}

// step advances the animation by one frame. Called from Group.Step
// only while the state is Running.
func (a *Animable) step(absoluteTime, frameDelta float64) {
	if a.startPending {
		a.startPending = false
		a.resumePending = false
		a.startTime = absoluteTime
	} else if a.resumePending {
		// Shift the time base so the first post-resume step sees the
		// elapsed value from the moment of pausing.
		a.resumePending = false
		a.startTime += absoluteTime - a.pauseTime
	}

	elapsed := absoluteTime - a.startTime
	if elapsed < 0 {
		// The caller supplied a decreasing absolute time. Clamp rather
		// than abort the frame.
		elapsed = 0
	}
	a.lastTime = absoluteTime

	a.animation.AnimationStep(elapsed, frameDelta)

	if a.currentState != Running {
		// The step callback paused or stopped this Animable.
		return
	}
	if a.duration <= 0 || elapsed < a.duration {
		return
	}
	if a.repeated && (a.repeatCount == 0 || a.repeats+1 < a.repeatCount) {
		// Internal cycle restart: shift the time base by exactly one
		// duration so overshoot time carries into the next cycle. No
		// stop/start notifications fire for this.
		a.repeats++
		a.startTime += a.duration
		return
	}
	a.SetState(Stopped)
}
