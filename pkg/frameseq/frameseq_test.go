package frameseq

import (
	"testing"

	"github.com/decker502/animable/pkg/anim"
)

// TestFrameAtMapsElapsedTime verifies the elapsed→index mapping at a
// 12 FPS playback rate with a shifted start frame.
func TestFrameAtMapsElapsedTime(t *testing.T) {
	s := &Sequence{FPS: 12, StartFrame: 78, FrameCount: 25}

	tests := []struct {
		elapsed float64
		want    int
	}{
		{0.0, 78},
		{0.05, 78}, // still within the first frame
		{0.1, 79},
		{1.0, 90},   // 12 frames in
		{2.0, 102},  // the cycle's final frame
		{10.0, 102}, // clamped past the end of the cycle
	}
	for _, tt := range tests {
		if got := s.FrameAt(tt.elapsed); got != tt.want {
			t.Errorf("FrameAt(%v): got %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

// TestCycleDuration verifies the cycle length used to wire the
// Animable duration.
func TestCycleDuration(t *testing.T) {
	s := &Sequence{FPS: 12, FrameCount: 24}
	if got := s.CycleDuration(); got != 2.0 {
		t.Errorf("CycleDuration: got %v, want 2.0", got)
	}

	unset := &Sequence{}
	if got := unset.CycleDuration(); got != 0 {
		t.Errorf("CycleDuration of unset sequence: got %v, want 0", got)
	}
}

// TestOnFrameFiresPerIndexChange verifies the callback fires once per
// frame-index change, not once per step.
func TestOnFrameFiresPerIndexChange(t *testing.T) {
	var changes []int
	s := &Sequence{
		FPS:        10,
		FrameCount: 4,
		OnFrame:    func(frame int) { changes = append(changes, frame) },
	}
	a := s.NewAnimable(nil, false, 0)
	g := anim.NewGroup()
	g.Add(a)
	a.SetState(anim.Running)

	// Step twice within the same logical frame, then past it.
	g.Step(0.00, 0.0)
	g.Step(0.05, 0.05)
	g.Step(0.15, 0.10)
	g.Step(0.25, 0.10)

	want := []int{1, 2}
	if len(changes) != len(want) {
		t.Fatalf("frame changes: got %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d: got %d, want %d", i, changes[i], want[i])
		}
	}
}

// TestLoopingThroughAnimableRepeats verifies looping is delegated to
// the scheduler: a repeated Animable restarts the cycle and the frame
// index wraps back to the early frames.
func TestLoopingThroughAnimableRepeats(t *testing.T) {
	s := &Sequence{FPS: 10, FrameCount: 5}
	a := s.NewAnimable(nil, true, 0)
	g := anim.NewGroup()
	g.Add(a)
	a.SetState(anim.Running)

	g.Step(0.0, 0.0)
	g.Step(0.45, 0.45) // last frame of the first cycle
	if s.CurrentFrame() != 4 {
		t.Fatalf("frame before wrap: got %d, want 4", s.CurrentFrame())
	}

	g.Step(0.55, 0.10) // exceeds the cycle, restarts it at t=0.5
	if a.State() != anim.Running {
		t.Fatalf("state after wrap: got %v, want Running", a.State())
	}

	g.Step(0.58, 0.03) // 0.08 into the second cycle
	if s.CurrentFrame() != 0 {
		t.Errorf("frame after wrap: got %d, want 0", s.CurrentFrame())
	}
}

// TestStopHoldsLastFrame verifies the HoldLastFrame stop behavior.
func TestStopHoldsLastFrame(t *testing.T) {
	s := &Sequence{FPS: 10, FrameCount: 3, HoldLastFrame: true}
	a := s.NewAnimable(nil, false, 0)
	g := anim.NewGroup()
	g.Add(a)
	a.SetState(anim.Running)

	g.Step(0.0, 0.0)
	g.Step(1.0, 1.0) // past the cycle, auto-stops

	if a.State() != anim.Stopped {
		t.Fatalf("state: got %v, want Stopped", a.State())
	}
	if s.CurrentFrame() != 2 {
		t.Errorf("held frame: got %d, want 2", s.CurrentFrame())
	}
}

// TestStopResetsWithoutHold verifies one-shot sequences reset to the
// start frame when stopping.
func TestStopResetsWithoutHold(t *testing.T) {
	s := &Sequence{FPS: 10, StartFrame: 3, FrameCount: 3}
	a := s.NewAnimable(nil, false, 0)
	g := anim.NewGroup()
	g.Add(a)
	a.SetState(anim.Running)

	g.Step(0.0, 0.0)
	g.Step(1.0, 1.0)

	if a.State() != anim.Stopped {
		t.Fatalf("state: got %v, want Stopped", a.State())
	}
	if s.CurrentFrame() != 3 {
		t.Errorf("frame after stop: got %d, want 3 (start frame)", s.CurrentFrame())
	}
}
