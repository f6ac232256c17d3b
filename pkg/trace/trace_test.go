package trace

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/ramp/pkg/easing"
	"github.com/go-drift/ramp/pkg/errors"
	"github.com/go-drift/ramp/pkg/ramp"
	ramptest "github.com/go-drift/ramp/pkg/testing"
)

func startRamp(t *testing.T, mode ramp.LoopMode) (*ramp.Ramp, *ramptest.FakeClock) {
	t.Helper()
	clk := ramptest.NewFakeClock()
	r := ramp.NewWithClock(clk)
	if _, err := r.Go(100, time.Second, mode, easing.Linear); err != nil {
		t.Fatal(err)
	}
	return r, clk
}

func TestRecordSteady(t *testing.T) {
	r, clk := startRamp(t, ramp.OnceForward)
	tr, err := Record("steady", r, clk, Options{Tick: 100 * time.Millisecond, Length: 1500 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Samples) != 16 {
		t.Fatalf("got %d samples, want 16", len(tr.Samples))
	}
	if s := tr.Samples[5]; s.At != 500*time.Millisecond || s.Value != 50 {
		t.Errorf("sample 5 = %+v", s)
	}
	last := tr.Last()
	if last.Value != 100 || last.Status != ramp.StatusFinished || last.At != 1500*time.Millisecond {
		t.Errorf("last sample = %+v", last)
	}
	if tr.Name != "steady" || tr.ID.String() == "" {
		t.Error("trace should carry its name and an id")
	}
}

func TestRecordJitterIsDeterministic(t *testing.T) {
	opts := Options{Tick: 20 * time.Millisecond, Jitter: 15 * time.Millisecond, Length: 2500 * time.Millisecond, Seed: 7}

	r1, c1 := startRamp(t, ramp.LoopForward)
	a, err := Record("a", r1, c1, opts)
	if err != nil {
		t.Fatal(err)
	}
	r2, c2 := startRamp(t, ramp.LoopForward)
	b, _ := Record("b", r2, c2, opts)

	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("sample counts differ: %d vs %d", len(a.Samples), len(b.Samples))
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a.Samples[i], b.Samples[i])
		}
	}
	if a.ID == b.ID {
		t.Error("each trace should get its own id")
	}

	// Jitter changes when updates happen, not where the ramp ends up.
	last := a.Last()
	if last.At != 2500*time.Millisecond || last.Cycle != 2 || last.Value != 50 {
		t.Errorf("last sample = %+v", last)
	}
}

func TestRecordPauseWindow(t *testing.T) {
	r, clk := startRamp(t, ramp.OnceForward)
	tr, err := Record("paused", r, clk, Options{
		Tick:     100 * time.Millisecond,
		Length:   1500 * time.Millisecond,
		PauseAt:  300 * time.Millisecond,
		PauseFor: 500 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	if s := tr.Samples[5]; s.Status != ramp.StatusPaused || s.Value != 20 {
		t.Errorf("sample during pause = %+v", s)
	}
	if s := tr.Samples[10]; s.Status != ramp.StatusRunning || s.Value != 50 {
		t.Errorf("sample after pause = %+v", s)
	}
	if last := tr.Last(); last.Value != 100 || last.Status != ramp.StatusFinished {
		t.Errorf("last sample = %+v", last)
	}
}

func TestRecordRejectsBadOptions(t *testing.T) {
	r, clk := startRamp(t, ramp.OnceForward)
	for _, opts := range []Options{
		{Tick: 0, Length: time.Second},
		{Tick: time.Millisecond, Length: 0},
		{Tick: time.Millisecond, Length: time.Second, Jitter: time.Millisecond},
		{Tick: time.Millisecond, Length: time.Second, Jitter: -time.Millisecond},
	} {
		if _, err := Record("bad", r, clk, opts); !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("Record(%+v) error = %v", opts, err)
		}
	}
}

func TestBoundsAndTable(t *testing.T) {
	r, clk := startRamp(t, ramp.ForthAndBack)
	tr, err := Record("pingpong", r, clk, Options{Tick: 250 * time.Millisecond, Length: 2 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := tr.Bounds()
	if lo != 0 || hi != 100 {
		t.Errorf("Bounds() = %v, %v; want 0, 100", lo, hi)
	}

	var buf bytes.Buffer
	if err := tr.WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(tr.Samples)+1 {
		t.Errorf("table has %d lines, want %d", len(lines), len(tr.Samples)+1)
	}
	if !strings.Contains(lines[0], "completion") || !strings.Contains(lines[len(lines)-1], "running") {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}
