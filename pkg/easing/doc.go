// Package easing provides easing curves for ramps and other time-driven
// interpolation.
//
// A [Curve] maps linear progress in [0, 1] to eased progress. Every curve in
// this package returns exactly 0 at 0 and exactly 1 at 1. Back and elastic
// curves overshoot [0, 1] in between; that is how they are meant to look.
// Inputs are never clamped, so callers that extrapolate get the closed form.
// [CubicBezier] curves are the exception: they are defined by a parametric
// curve that ends at (0,0) and (1,1), and they pin progress outside [0, 1]
// to those endpoints.
//
// Families come in In, Out and InOut variants:
//
//   - [Linear]
//   - [QuadraticIn], [CubicIn], [QuarticIn], [QuinticIn] and friends
//   - [SinusoidalIn], [ExponentialIn], [CircularIn]
//   - [ElasticIn], [BackIn], [BounceIn]
//
// Use [CubicBezier] to build a curve matching CSS cubic-bezier(), and [Lookup]
// to resolve a curve by name (for example "elastic-out") from configuration.
package easing

// Curve transforms linear progress into eased progress.
type Curve func(float64) float64
