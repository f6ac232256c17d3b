package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/ramp/cmd/ramp/internal/watch"
)

func init() {
	RegisterCommand(newWatchCmd)
}

func newWatchCmd() *cobra.Command {
	var opts simOptions
	c := &cobra.Command{
		Use:   "watch",
		Short: "Run a preset live in the terminal",
		Long: `Run a preset against the wall clock and show its value as it moves.

Keys: space pauses and resumes, r restarts, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, err := opts.loadPreset()
			if err != nil {
				return err
			}
			return watch.Run(*p)
		},
	}
	c.Flags().StringVar(&opts.presetPath, "preset", "", "preset YAML file")
	c.Flags().StringVar(&opts.name, "name", "", "preset name within the file (default: first)")
	return c
}
