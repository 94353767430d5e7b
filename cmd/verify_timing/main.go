// verify_timing - headless check of the scheduling semantics with
// synthetic timestamps: pause/resume continuity, repeat exhaustion,
// the idle-group fast path, and mid-step removal.
//
// Usage:
//
//	go run ./cmd/verify_timing
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/decker502/animable/pkg/anim"
)

type report struct {
	name    string
	passed  bool
	message string
}

var reports []report

func addReport(name string, passed bool, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	reports = append(reports, report{name: name, passed: passed, message: message})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-28s | %s", status, name, message)
}

// probe records the elapsed values and transition notifications its
// Animable produces.
type probe struct {
	elapsed []float64
	started int
	stopped int
}

func (p *probe) AnimationStep(elapsed, delta float64) { p.elapsed = append(p.elapsed, elapsed) }
func (p *probe) AnimationStarted()                    { p.started++ }
func (p *probe) AnimationStopped()                    { p.stopped++ }

func verifyResumeContinuity() {
	p := &probe{}
	a := anim.New(nil, p)
	g := anim.NewGroup()
	g.Add(a)
	a.SetState(anim.Running)

	g.Step(0.0, 0.0)
	g.Step(2.0, 2.0)
	a.SetState(anim.Paused)
	g.Step(7.0, 5.0) // time passes while paused
	a.SetState(anim.Running)
	g.Step(8.0, 1.0)

	got := p.elapsed[len(p.elapsed)-1]
	addReport("resume continuity", math.Abs(got-2.0) < 1e-9,
		"elapsed after pause gap: got %.3f, want 2.000", got)
}

func verifyRepeatExhaustion() {
	p := &probe{}
	a := anim.New(nil, p)
	a.SetDuration(1.0)
	a.SetRepeated(true)
	a.SetRepeatCount(2)
	g := anim.NewGroup()
	g.Add(a)
	a.SetState(anim.Running)

	g.Step(0.5, 0.5)
	g.Step(1.5, 1.0)
	g.Step(2.5, 1.0)

	addReport("repeat exhaustion", a.State() == anim.Stopped && p.stopped == 1,
		"state=%v stops=%d, want Stopped/1", a.State(), p.stopped)
}

func verifyIdleFastPath() {
	steps := 0
	g := anim.NewGroup()
	for i := 0; i < 4; i++ {
		a := anim.New(nil, anim.StepFunc(func(elapsed, delta float64) { steps++ }))
		g.Add(a)
	}
	g.Step(1.0, 1.0)

	addReport("idle fast path", steps == 0 && g.RunningCount() == 0,
		"steps=%d running=%d, want 0/0", steps, g.RunningCount())
}

func verifyMidStepRemoval() {
	g := anim.NewGroup()
	counts := make([]int, 3)
	members := make([]*anim.Animable, 3)
	for i := range members {
		i := i
		members[i] = anim.New(nil, anim.StepFunc(func(elapsed, delta float64) {
			counts[i]++
			if i == 1 {
				g.Remove(members[1])
			}
		}))
		g.Add(members[i])
		members[i].SetState(anim.Running)
	}
	g.Step(0.0, 0.0)

	passed := counts[0] == 1 && counts[1] == 1 && counts[2] == 1 &&
		members[1].Group() == nil && g.Len() == 2
	addReport("mid-step removal", passed,
		"steps=%v len=%d, want [1 1 1]/2", counts, g.Len())
}

func main() {
	log.SetFlags(0)

	verifyResumeContinuity()
	verifyRepeatExhaustion()
	verifyIdleFastPath()
	verifyMidStepRemoval()

	failed := 0
	for _, r := range reports {
		if !r.passed {
			failed++
		}
	}
	log.Printf("---")
	log.Printf("%d checks, %d failed", len(reports), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
