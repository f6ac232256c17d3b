// Package trace records how a ramp evolves under a simulated control loop.
//
// Record advances a steppable clock tick by tick, with optional random
// jitter on each tick to mimic an irregular loop, calls Update, and keeps a
// sample of the ramp after every tick. The same seed always produces the
// same trace.
package trace

import (
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/ramp/pkg/errors"
	"github.com/go-drift/ramp/pkg/ramp"
)

// Clock is a ramp clock that the recorder can move forward.
type Clock interface {
	ramp.Clock
	Advance(d time.Duration)
}

// Options control a recording.
type Options struct {
	// Tick is the nominal interval between updates.
	Tick time.Duration
	// Jitter is the largest random deviation applied to each tick.
	Jitter time.Duration
	// Length is the total simulated time.
	Length time.Duration
	// Seed feeds the jitter generator.
	Seed int64
	// PauseAt and PauseFor describe an optional pause window. PauseFor of
	// zero disables it.
	PauseAt  time.Duration
	PauseFor time.Duration
}

// Sample is the state of a ramp after one update.
type Sample struct {
	At         time.Duration
	Value      float64
	Completion float64
	Cycle      int
	Status     ramp.Status
}

// Trace is a recorded run.
type Trace struct {
	ID      uuid.UUID
	Name    string
	Samples []Sample
}

// Record drives r through opts.Length of simulated time on clk. The ramp
// must already be bound to clk and have a session started.
func Record(name string, r *ramp.Ramp, clk Clock, opts Options) (*Trace, error) {
	if opts.Tick <= 0 {
		return nil, errors.Invalid("trace.Record", fmt.Errorf("tick must be positive, got %s", opts.Tick))
	}
	if opts.Length <= 0 {
		return nil, errors.Invalid("trace.Record", fmt.Errorf("length must be positive, got %s", opts.Length))
	}
	if opts.Jitter < 0 || opts.Jitter >= opts.Tick {
		return nil, errors.Invalid("trace.Record", fmt.Errorf("jitter must be in [0, tick), got %s", opts.Jitter))
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	t := &Trace{
		ID:      uuid.New(),
		Name:    name,
		Samples: make([]Sample, 0, int(opts.Length/opts.Tick)+2),
	}

	var at time.Duration
	t.Samples = append(t.Samples, sample(r.Update(), at))

	pauseEnd := opts.PauseAt + opts.PauseFor
	for at < opts.Length {
		step := opts.Tick
		if opts.Jitter > 0 {
			step += time.Duration(rng.Int63n(int64(2*opts.Jitter)+1)) - opts.Jitter
		}
		if at+step > opts.Length {
			step = opts.Length - at
		}
		clk.Advance(step)
		at += step

		if opts.PauseFor > 0 {
			switch {
			case at >= opts.PauseAt && at < pauseEnd:
				r.Pause()
			case at >= pauseEnd:
				r.Resume()
			}
		}
		t.Samples = append(t.Samples, sample(r.Update(), at))
	}
	return t, nil
}

func sample(r *ramp.Ramp, at time.Duration) Sample {
	return Sample{
		At:         at,
		Value:      r.Value(),
		Completion: r.Completion(),
		Cycle:      r.CycleCount(),
		Status:     r.Status(),
	}
}

// Last returns the final sample.
func (t *Trace) Last() Sample {
	if len(t.Samples) == 0 {
		return Sample{}
	}
	return t.Samples[len(t.Samples)-1]
}

// Bounds returns the smallest and largest recorded values.
func (t *Trace) Bounds() (lo, hi float64) {
	for i, s := range t.Samples {
		if i == 0 || s.Value < lo {
			lo = s.Value
		}
		if i == 0 || s.Value > hi {
			hi = s.Value
		}
	}
	return lo, hi
}

// WriteTable writes the samples as an aligned text table.
func (t *Trace) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "ms\tvalue\tcompletion\tcycle\tstatus\t\n")
	for _, s := range t.Samples {
		fmt.Fprintf(tw, "%d\t%.3f\t%.1f%%\t%d\t%s\t\n",
			s.At.Milliseconds(), s.Value, s.Completion, s.Cycle, s.Status)
	}
	return tw.Flush()
}
