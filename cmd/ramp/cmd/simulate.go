package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/ramp/pkg/preset"
	"github.com/go-drift/ramp/pkg/ramp"
	ramptest "github.com/go-drift/ramp/pkg/testing"
	"github.com/go-drift/ramp/pkg/trace"
)

func init() {
	RegisterCommand(newSimulateCmd)
}

// simOptions are the flags shared by simulate and plot.
type simOptions struct {
	presetPath string
	name       string
	tick       time.Duration
	jitter     time.Duration
	length     time.Duration
	seed       int64
	pauseAt    time.Duration
	pauseFor   time.Duration
}

func (o *simOptions) bind(c *cobra.Command) {
	f := c.Flags()
	f.StringVar(&o.presetPath, "preset", "", "preset YAML file")
	f.StringVar(&o.name, "name", "", "preset name within the file (default: first)")
	f.DurationVar(&o.tick, "tick", 20*time.Millisecond, "control loop interval")
	f.DurationVar(&o.jitter, "jitter", 0, "largest random deviation of each tick")
	f.DurationVar(&o.length, "for", 3*time.Second, "simulated time to record")
	f.Int64Var(&o.seed, "seed", 1, "jitter seed")
	f.DurationVar(&o.pauseAt, "pause-at", 0, "simulated time at which to pause")
	f.DurationVar(&o.pauseFor, "pause-for", 0, "how long to stay paused")
}

func (o *simOptions) loadPreset() (*preset.Preset, error) {
	if o.presetPath == "" {
		return nil, fmt.Errorf("--preset is required")
	}
	file, err := preset.Load(o.presetPath)
	if err != nil {
		return nil, err
	}
	if o.name == "" {
		return &file.Ramps[0], nil
	}
	return file.Find(o.name)
}

// run replays the preset on a simulated clock.
func (o *simOptions) run() (*trace.Trace, *ramp.Ramp, error) {
	p, err := o.loadPreset()
	if err != nil {
		return nil, nil, err
	}
	clk := ramptest.NewFakeClock()
	r := ramp.NewWithClock(clk)
	if err := p.Start(r); err != nil {
		return nil, nil, err
	}
	tr, err := trace.Record(p.Name, r, clk, trace.Options{
		Tick:     o.tick,
		Jitter:   o.jitter,
		Length:   o.length,
		Seed:     o.seed,
		PauseAt:  o.pauseAt,
		PauseFor: o.pauseFor,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Str("trace", tr.ID.String()).
		Str("preset", p.Name).
		Int("samples", len(tr.Samples)).
		Msg("simulation_done")
	return tr, r, nil
}

func newSimulateCmd() *cobra.Command {
	var opts simOptions
	c := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a preset under a simulated clock",
		Long: `Replay a preset under a simulated clock and print every sample.

The clock advances by --tick, randomly shifted by up to --jitter, and the
ramp is updated after each step. The same --seed always gives the same run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, _, err := opts.run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s run %s\n", tr.Name, tr.ID)
			return tr.WriteTable(cmd.OutOrStdout())
		},
	}
	opts.bind(c)
	return c
}
