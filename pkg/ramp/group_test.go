package ramp_test

import (
	"testing"
	"time"

	"github.com/go-drift/ramp/pkg/easing"
	"github.com/go-drift/ramp/pkg/ramp"
	ramptest "github.com/go-drift/ramp/pkg/testing"
)

func TestGroupUpdatesAllMembers(t *testing.T) {
	clk := ramptest.NewFakeClock()
	a := ramp.NewWithClock(clk)
	b := ramp.NewWithClock(clk)
	mustGo(t, a, 100, time.Second, ramp.OnceForward, easing.Linear)
	mustGo(t, b, 10, 2*time.Second, ramp.LoopForward, easing.Linear)

	g := ramp.NewGroup()
	g.Add(a)
	removeB := g.Add(b)
	g.Add(a) // duplicate is ignored

	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}

	clk.Advance(500 * time.Millisecond)
	g.Update()
	assertNear(t, "a", a.Value(), 50)
	assertNear(t, "b", b.Value(), 2.5)

	clk.Advance(time.Second)
	g.Update()
	if !a.IsFinished() {
		t.Error("a should have finished")
	}
	if !g.Active() {
		t.Error("group should be active while b loops")
	}

	removeB()
	if g.Len() != 1 {
		t.Errorf("Len() after remove = %d, want 1", g.Len())
	}
	if g.Active() {
		t.Error("group should be inactive once only finished ramps remain")
	}

	before := b.Value()
	clk.Advance(300 * time.Millisecond)
	g.Update()
	if b.Value() != before {
		t.Error("removed ramp should no longer be updated")
	}
}

func TestGroupEmpty(t *testing.T) {
	g := ramp.NewGroup()
	g.Update()
	g.Remove(ramp.New())
	if g.Active() || g.Len() != 0 {
		t.Error("empty group should be inactive")
	}
}

func TestGroupRemoveFromListener(t *testing.T) {
	clk := ramptest.NewFakeClock()
	g := ramp.NewGroup()
	r := ramp.NewWithClock(clk)
	var remove func()
	r.AddStatusListener(func(s ramp.Status) {
		if s == ramp.StatusFinished {
			remove()
		}
	})
	remove = g.Add(r)
	mustGo(t, r, 1, time.Second, ramp.OnceForward, easing.Linear)

	clk.Advance(2 * time.Second)
	g.Update()
	if g.Len() != 0 {
		t.Error("listener should be able to remove its ramp during Update")
	}
}
