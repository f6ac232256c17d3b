package ramp

import "sync"

// Group updates a set of ramps together, typically once per control-loop
// tick. The group guards its membership with a mutex; the ramps themselves
// must still be driven from a single goroutine.
type Group struct {
	mu    sync.Mutex
	ramps []*Ramp
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add registers r with the group and returns a function that removes it.
// Adding a ramp twice has no effect.
func (g *Group) Add(r *Ramp) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.indexOf(r) < 0 {
		g.ramps = append(g.ramps, r)
	}
	return func() {
		g.Remove(r)
	}
}

// Remove unregisters r. Removing an unknown ramp has no effect.
func (g *Group) Remove(r *Ramp) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i := g.indexOf(r); i >= 0 {
		g.ramps = append(g.ramps[:i], g.ramps[i+1:]...)
	}
}

// Update calls Update on every member, in the order they were added.
func (g *Group) Update() {
	g.mu.Lock()
	if len(g.ramps) == 0 {
		g.mu.Unlock()
		return
	}
	// Copy so members can be added or removed from listeners.
	ramps := make([]*Ramp, len(g.ramps))
	copy(ramps, g.ramps)
	g.mu.Unlock()

	for _, r := range ramps {
		r.Update()
	}
}

// Active reports whether any member has a session in progress.
func (g *Group) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.ramps {
		if r.IsRunning() {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ramps)
}

func (g *Group) indexOf(r *Ramp) int {
	for i, m := range g.ramps {
		if m == r {
			return i
		}
	}
	return -1
}
