package ramp

import "math"

// Tween interpolates between Begin and End values based on progress.
//
// Tween maps a ramp running from 0 to 1 onto any value range or type. Use
// the helper constructors ([TweenFloat64], [TweenColor]) for common types,
// or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the ramp's current value
// as progress.
func (tw *Tween[T]) Transform(r *Ramp) T {
	return tw.Evaluate(r.Value())
}

// Color is a 32-bit ARGB color, as driven onto RGB LEDs.
type Color uint32

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(0xFF)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels returns the alpha, red, green and blue components.
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates each channel of two colors independently.
// Channels are clamped to [0, 255] so overshooting curves saturate.
func LerpColor(a, b Color, t float64) Color {
	aA, aR, aG, aB := a.Channels()
	bA, bR, bG, bB := b.Channels()
	return Color(lerpChannel(aA, bA, t))<<24 |
		Color(lerpChannel(aR, bR, t))<<16 |
		Color(lerpChannel(aG, bG, t))<<8 |
		Color(lerpChannel(aB, bB, t))
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(LerpFloat64(float64(a), float64(b), t))
	return uint8(math.Min(255, math.Max(0, v)))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end Color) *Tween[Color] {
	return &Tween[Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
