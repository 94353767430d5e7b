package anim

// Group is an unordered collection of Animables stepped together once
// per frame. Membership is unique and an Animable belongs to at most
// one Group at a time; Add enforces this by stealing the member from
// its previous group.
//
// Group keeps a count of Running members so that a group whose members
// are all Stopped or Paused costs a single comparison per frame.
// Putting animations that are not permanently running into their own
// group is the intended way to keep idle animations off the per-frame
// path.
//
// All methods must be called from the frame-loop goroutine; Group does
// no locking of its own.
type Group struct {
	members []*Animable

	// pending buffers members added while a Step pass is in progress;
	// they are first stepped on the next frame.
	pending []*Animable

	// running counts members in state Running, maintained on every
	// state transition and on Add/Remove.
	running int

	// stepping marks an in-progress Step pass; removals during the
	// pass set dirty and the member slice is compacted afterwards.
	stepping bool
	dirty    bool
}

// NewGroup creates an empty animation group.
func NewGroup() *Group {
	return &Group{}
}

// Add inserts an Animable into the group. If it already belongs to
// another group it is removed from that group first; adding a member
// to its own group again is a no-op.
func (g *Group) Add(a *Animable) {
	if a.group == g {
		return
	}
	if a.group != nil {
		a.group.Remove(a)
	}
	a.group = g
	if a.currentState == Running {
		g.running++
	}
	if g.stepping {
		// A member removed earlier in this pass still occupies its
		// slot in members (or pending); restoring the back-reference
		// above is enough to keep it, and appending again would
		// duplicate the membership.
		if g.contains(a) {
			return
		}
		g.pending = append(g.pending, a)
		return
	}
	g.members = append(g.members, a)
}

// contains reports whether a occupies a slot in members or pending,
// regardless of its back-reference.
func (g *Group) contains(a *Animable) bool {
	for _, m := range g.members {
		if m == a {
			return true
		}
	}
	for _, m := range g.pending {
		if m == a {
			return true
		}
	}
	return false
}

// Remove takes an Animable out of the group and clears its group
// back-reference. Removing an Animable that is not a member is a
// no-op. Remove is safe to call from inside an AnimationStep or
// listener callback during a Step pass; the remaining members of the
// pass are unaffected.
func (g *Group) Remove(a *Animable) {
	if a.group != g {
		return
	}
	a.group = nil
	if a.currentState == Running {
		g.running--
	}
	if g.stepping {
		// Defer the structural change: the Step pass skips members
		// whose back-reference no longer points here and compacts the
		// slice once the traversal is done.
		g.dirty = true
		return
	}
	for i, m := range g.members {
		if m == a {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
}

// Len returns the number of members.
func (g *Group) Len() int {
	n := 0
	for _, a := range g.members {
		if a.group == g {
			n++
		}
	}
	for _, a := range g.pending {
		if a.group == g {
			n++
		}
	}
	return n
}

// RunningCount returns the number of members in state Running.
func (g *Group) RunningCount() int {
	return g.running
}

// Clear detaches all members, resetting their group back-references
// to nil. The members themselves are not stopped or otherwise
// touched. Use this when throwing a group away.
func (g *Group) Clear() {
	for _, a := range g.members {
		if a.group == g {
			a.group = nil
		}
	}
	for _, a := range g.pending {
		if a.group == g {
			a.group = nil
		}
	}
	if g.stepping {
		g.dirty = true
	} else {
		g.members = g.members[:0]
		g.pending = g.pending[:0]
	}
	g.running = 0
}

// Step performs one animation step for every Running member.
//
// Parameters:
//   - absoluteTime: time of the current frame on the caller's clock,
//     monotonically non-decreasing across calls
//   - frameDelta: caller-supplied duration of the current frame, ≥ 0
//
// Non-Running members are skipped; when no member is Running the call
// returns immediately. The relative order in which sibling members are
// stepped is unspecified and must not be relied on.
//
// Step callbacks may call Add, Remove, Detach or SetState on any
// member of this group, including their own Animable, without
// corrupting the traversal: removals take effect immediately for
// membership but the slice is restructured only after the pass, and
// additions are stepped starting with the next frame.
func (g *Group) Step(absoluteTime, frameDelta float64) {
	if g.running == 0 {
		return
	}

	g.stepping = true
	for _, a := range g.members {
		if a.group != g || a.currentState != Running {
			continue
		}
		a.step(absoluteTime, frameDelta)
	}
	g.stepping = false

	if g.dirty {
		g.compact()
		g.dirty = false
	}
	if len(g.pending) > 0 {
		for _, a := range g.pending {
			if a.group == g {
				g.members = append(g.members, a)
			}
		}
		g.pending = g.pending[:0]
	}
}

// stateChanged keeps the running counter in sync with a member's
// state transition. Called from Animable.SetState.
func (g *Group) stateChanged(from, to State) {
	if from == Running {
		g.running--
	}
	if to == Running {
		g.running++
	}
}

// compact drops members removed during the last Step pass.
func (g *Group) compact() {
	kept := g.members[:0]
	for _, a := range g.members {
		if a.group == g {
			kept = append(kept, a)
		}
	}
	// Clear the tail so removed members are not pinned by the backing
	// array.
	for i := len(kept); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = kept
}
