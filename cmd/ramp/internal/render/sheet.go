package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/ramp/pkg/easing"
)

// Sheet lays out one small chart per curve.
type Sheet struct {
	Columns    int
	CellWidth  int
	CellHeight int
}

// DefaultSheet is a four-column sheet of 180x130 cells.
var DefaultSheet = Sheet{Columns: 4, CellWidth: 180, CellHeight: 130}

const (
	labelHeight = 18
	cellMargin  = 10
	// Values in [yLow, yHigh] are visible, leaving room for overshoot.
	yLow  = -0.5
	yHigh = 1.5
)

var (
	sheetBackground = color.RGBA{250, 250, 250, 255}
	sheetGuide      = color.RGBA{200, 200, 200, 255}
	sheetFill       = color.NRGBA{0, 130, 200, 48}
	sheetStroke     = color.RGBA{0, 130, 200, 255}
	sheetLabel      = color.RGBA{40, 40, 40, 255}
)

// Render draws every named curve and returns the image.
func (s Sheet) Render(names []string) (*image.RGBA, error) {
	if s.Columns <= 0 || s.CellWidth <= 2*cellMargin || s.CellHeight <= labelHeight+2*cellMargin {
		return nil, fmt.Errorf("invalid sheet layout %+v", s)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no curves to draw")
	}
	rows := (len(names) + s.Columns - 1) / s.Columns
	img := image.NewRGBA(image.Rect(0, 0, s.Columns*s.CellWidth, rows*s.CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	for i, name := range names {
		curve, err := easing.Lookup(name)
		if err != nil {
			return nil, err
		}
		origin := image.Pt((i%s.Columns)*s.CellWidth, (i/s.Columns)*s.CellHeight)
		s.drawCell(img, origin, name, curve)
	}
	return img, nil
}

func (s Sheet) drawCell(img *image.RGBA, origin image.Point, name string, curve easing.Curve) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(sheetLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(origin.X+cellMargin, origin.Y+labelHeight-4),
	}
	d.DrawString(name)

	area := image.Rect(
		origin.X+cellMargin, origin.Y+labelHeight+cellMargin/2,
		origin.X+s.CellWidth-cellMargin, origin.Y+s.CellHeight-cellMargin,
	)
	w, h := area.Dx(), area.Dy()
	toY := func(v float64) float32 {
		return float32((yHigh - v) / (yHigh - yLow) * float64(h))
	}

	// Guides at 0 and 1.
	for _, v := range []float64{0, 1} {
		y := area.Min.Y + int(toY(v))
		draw.Draw(img, image.Rect(area.Min.X, y, area.Max.X, y+1), image.NewUniform(sheetGuide), image.Point{}, draw.Over)
	}

	steps := 2 * w
	xs := make([]float32, steps+1)
	ys := make([]float32, steps+1)
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		xs[i] = float32(p * float64(w))
		ys[i] = toY(clampVisible(curve(p)))
	}

	fill := vector.NewRasterizer(w, h)
	fill.MoveTo(0, toY(0))
	for i := range xs {
		fill.LineTo(xs[i], ys[i])
	}
	fill.LineTo(float32(w), toY(0))
	fill.ClosePath()
	fill.Draw(img, area, image.NewUniform(sheetFill), image.Point{})

	stroke := vector.NewRasterizer(w, h)
	for i := 1; i < len(xs); i++ {
		strokeSegment(stroke, xs[i-1], ys[i-1], xs[i], ys[i], 1)
	}
	stroke.Draw(img, area, image.NewUniform(sheetStroke), image.Point{})
}

// strokeSegment adds a quad of half-width hw around the segment.
func strokeSegment(z *vector.Rasterizer, x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*hw, dx/length*hw
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

func clampVisible(v float64) float64 {
	return math.Max(yLow, math.Min(yHigh, v))
}

// Encode renders the sheet and writes it as PNG.
func (s Sheet) Encode(w io.Writer, names []string) error {
	img, err := s.Render(names)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Save renders the sheet to a PNG file at path.
func (s Sheet) Save(path string, names []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Encode(f, names)
}
