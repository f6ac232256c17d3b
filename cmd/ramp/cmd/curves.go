package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-drift/ramp/pkg/easing"
)

func init() {
	RegisterCommand(newCurvesCmd)
	RegisterCommand(newSampleCmd)
}

func newCurvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List easing curve names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(easing.Names(), "\n"))
			return err
		},
	}
}

func newSampleCmd() *cobra.Command {
	var steps int
	c := &cobra.Command{
		Use:   "sample <curve>",
		Short: "Print an easing curve at evenly spaced points",
		Long: `Print progress and eased value at steps+1 evenly spaced points in [0, 1].

Curve names are listed by "ramp curves".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			curve, err := easing.Lookup(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "progress\teased\t\n")
			for i := 0; i <= steps; i++ {
				p := float64(i) / float64(steps)
				fmt.Fprintf(tw, "%.3f\t%.6f\t\n", p, curve(p))
			}
			return tw.Flush()
		},
	}
	c.Flags().IntVar(&steps, "steps", 10, "number of intervals")
	return c
}
