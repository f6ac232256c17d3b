package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/ramp/cmd/ramp/internal/render"
	"github.com/go-drift/ramp/pkg/easing"
)

func init() {
	RegisterCommand(newPlotCmd)
	RegisterCommand(newSheetCmd)
}

func newPlotCmd() *cobra.Command {
	var opts simOptions
	var out string
	var curves []string
	var steps int

	c := &cobra.Command{
		Use:   "plot",
		Short: "Plot a simulated preset or a set of curves",
		Long: `Plot a preset replayed under a simulated clock (same flags as simulate),
or with --curves, plot the named easing curves side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(curves) > 0 {
				if err := render.PlotCurves(curves, steps, out); err != nil {
					return err
				}
			} else {
				tr, r, err := opts.run()
				if err != nil {
					return err
				}
				if err := render.PlotTrace(tr, r.Origin(), r.Target(), out); err != nil {
					return err
				}
			}
			log.Info().Str("file", out).Msg("plot_written")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	opts.bind(c)
	c.Flags().StringVarP(&out, "output", "o", "ramp.png", "output image (.png, .svg, .pdf)")
	c.Flags().StringSliceVar(&curves, "curves", nil, "curve names to plot instead of a preset")
	c.Flags().IntVar(&steps, "steps", 200, "samples per curve")
	return c
}

func newSheetCmd() *cobra.Command {
	var out string
	var columns int
	c := &cobra.Command{
		Use:   "sheet",
		Short: "Draw every registered curve on one PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sheet := render.DefaultSheet
			sheet.Columns = columns
			if err := sheet.Save(out, easing.Names()); err != nil {
				return err
			}
			log.Info().Str("file", out).Int("curves", len(easing.Names())).Msg("sheet_written")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	c.Flags().StringVarP(&out, "output", "o", "sheet.png", "output PNG")
	c.Flags().IntVar(&columns, "columns", render.DefaultSheet.Columns, "curves per row")
	return c
}
