// Package render writes ramp traces and easing curves to PNG files.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/go-drift/ramp/pkg/easing"
	"github.com/go-drift/ramp/pkg/trace"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
	smallGlyph = 1.5
)

// from https://sashamaps.net/docs/resources/20-colors/
var distinctiveColors = []color.RGBA{
	{230, 25, 75, 255},
	{60, 180, 75, 255},
	{0, 130, 200, 255},
	{245, 130, 48, 255},
	{145, 30, 180, 255},
	{70, 240, 240, 255},
	{240, 50, 230, 255},
	{0, 128, 128, 255},
	{170, 110, 40, 255},
	{128, 0, 0, 255},
	{128, 128, 0, 255},
	{0, 0, 128, 255},
}

func colorFromInt(i int) color.RGBA {
	return distinctiveColors[i%len(distinctiveColors)]
}

func newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	grid := plotter.NewGrid()
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)
	return p
}

func addLine(p *plot.Plot, label string, xys plotter.XYer, width, dashes float64, c color.Color) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(width)
	line.LineStyle.Color = c
	if dashes > 0 {
		line.LineStyle.Dashes = []vg.Length{vg.Points(dashes), vg.Points(dashes)}
	}
	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return nil
}

func addLinePoints(p *plot.Plot, label string, xys plotter.XYer, width float64, c color.Color, shape draw.GlyphDrawer, shapeSize float64) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(width)
	line.LineStyle.Color = c
	points.Shape = shape
	points.Color = c
	points.Radius = vg.Points(shapeSize)
	p.Add(line, points)
	p.Legend.Add(label, line, points)
	return nil
}

// PlotTrace saves the value of every sample in t against simulated time,
// with the session origin and target drawn as reference lines. The image
// format follows the extension of path.
func PlotTrace(t *trace.Trace, origin, target float64, path string) error {
	if len(t.Samples) == 0 {
		return fmt.Errorf("trace %s has no samples", t.Name)
	}
	p := newPlot(fmt.Sprintf("%s (%s)", t.Name, t.ID), "time (s)", "value")
	p.Legend.Top = true

	values := make(plotter.XYs, len(t.Samples))
	for i, s := range t.Samples {
		values[i].X = s.At.Seconds()
		values[i].Y = s.Value
	}
	end := values[len(values)-1].X
	if err := addLine(p, "origin", plotter.XYs{{X: 0, Y: origin}, {X: end, Y: origin}}, 1, 3, color.Gray{Y: 140}); err != nil {
		return err
	}
	if err := addLine(p, "target", plotter.XYs{{X: 0, Y: target}, {X: end, Y: target}}, 1, 3, color.Gray{Y: 60}); err != nil {
		return err
	}
	if err := addLinePoints(p, "value", values, 1.5, colorFromInt(2), draw.CircleGlyph{}, smallGlyph); err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// PlotCurves saves each named easing curve sampled over [0, 1].
func PlotCurves(names []string, steps int, path string) error {
	if len(names) == 0 {
		return fmt.Errorf("no curves to plot")
	}
	if steps < 2 {
		steps = 2
	}
	p := newPlot("easing curves", "progress", "eased")
	p.Legend.Top = true
	p.Legend.Left = true

	for i, name := range names {
		curve, err := easing.Lookup(name)
		if err != nil {
			return err
		}
		if err := addLine(p, name, sampleCurve(curve, steps), 1.5, 0, colorFromInt(i)); err != nil {
			return err
		}
	}
	return p.Save(plotWidth, plotHeight, path)
}

func sampleCurve(curve easing.Curve, steps int) plotter.XYs {
	xys := make(plotter.XYs, steps+1)
	for i := range xys {
		x := float64(i) / float64(steps)
		xys[i].X = x
		xys[i].Y = curve(x)
	}
	return xys
}
