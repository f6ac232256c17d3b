package easing

import "math"

const (
	backOvershoot      = 1.70158
	backInOutOvershoot = 2.5949

	elasticPeriod      = 0.3
	elasticInOutPeriod = 4.5

	bounceScale = 7.5625
	bounceSpan  = 2.75
)

// Linear returns progress unchanged.
func Linear(p float64) float64 {
	return p
}

// QuadraticIn accelerates from zero velocity.
func QuadraticIn(p float64) float64 {
	return p * p
}

// QuadraticOut decelerates to zero velocity.
func QuadraticOut(p float64) float64 {
	return p * (2 - p)
}

// QuadraticInOut accelerates until halfway, then decelerates.
func QuadraticInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return -1 + (4-2*p)*p
}

// CubicIn accelerates from zero velocity.
func CubicIn(p float64) float64 {
	return p * p * p
}

// CubicOut decelerates to zero velocity.
func CubicOut(p float64) float64 {
	q := p - 1
	return 1 + q*q*q
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := p - 1
	return 1 + 4*q*q*q
}

// QuarticIn accelerates from zero velocity.
func QuarticIn(p float64) float64 {
	return p * p * p * p
}

// QuarticOut decelerates to zero velocity.
func QuarticOut(p float64) float64 {
	q := p - 1
	return 1 - q*q*q*q
}

// QuarticInOut accelerates until halfway, then decelerates.
func QuarticInOut(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	q := p - 1
	return 1 - 8*q*q*q*q
}

// QuinticIn accelerates from zero velocity.
func QuinticIn(p float64) float64 {
	return p * p * p * p * p
}

// QuinticOut decelerates to zero velocity.
func QuinticOut(p float64) float64 {
	q := p - 1
	return 1 + q*q*q*q*q
}

// QuinticInOut accelerates until halfway, then decelerates.
func QuinticInOut(p float64) float64 {
	if p < 0.5 {
		return 16 * p * p * p * p * p
	}
	q := p - 1
	return 1 + 16*q*q*q*q*q
}

// SinusoidalIn follows the first quarter of a sine wave, shifted.
func SinusoidalIn(p float64) float64 {
	return math.Sin((p-1)*math.Pi/2) + 1
}

// SinusoidalOut follows the first quarter of a sine wave.
func SinusoidalOut(p float64) float64 {
	return math.Sin(p * math.Pi / 2)
}

// SinusoidalInOut follows half a sine wave.
func SinusoidalInOut(p float64) float64 {
	return (1 + math.Sin(math.Pi*(p-0.5))) / 2
}

// ExponentialIn is a base-2 power curve. The closed form is not zero at the
// origin, so 0 is returned explicitly.
func ExponentialIn(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Pow(2, 10*(p-1))
}

// ExponentialOut mirrors ExponentialIn; 1 is returned explicitly at the end.
func ExponentialOut(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}

// ExponentialInOut joins ExponentialIn and ExponentialOut at the midpoint.
func ExponentialInOut(p float64) float64 {
	switch {
	case p == 0:
		return 0
	case p == 1:
		return 1
	case p < 0.5:
		return 0.5 * math.Pow(2, 20*p-10)
	default:
		return -0.5*math.Pow(2, -20*p+10) + 1
	}
}

// CircularIn follows a quarter circle.
func CircularIn(p float64) float64 {
	return 1 - math.Sqrt(1-p*p)
}

// CircularOut follows a quarter circle.
func CircularOut(p float64) float64 {
	return math.Sqrt((2 - p) * p)
}

// CircularInOut joins two quarter circles at the midpoint.
func CircularInOut(p float64) float64 {
	if p < 0.5 {
		return (1 - math.Sqrt(1-4*p*p)) / 2
	}
	return (math.Sqrt(-(2*p-3)*(2*p-1)) + 1) / 2
}

// ElasticIn winds up like a spring before release.
func ElasticIn(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	return -math.Pow(2, 10*(p-1)) * math.Sin((p-1.075)*(2*math.Pi)/elasticPeriod)
}

// ElasticOut overshoots and settles like a spring.
func ElasticOut(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	return math.Pow(2, -10*p)*math.Sin((p-0.075)*(2*math.Pi)/elasticPeriod) + 1
}

// ElasticInOut winds up, then overshoots and settles.
func ElasticInOut(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	phase := math.Sin((20*p - 11.125) * math.Pi / elasticInOutPeriod)
	if p < 0.5 {
		return -math.Pow(2, 20*p-10) * phase / 2
	}
	return math.Pow(2, -20*p+10)*phase/2 + 1
}

// BackIn pulls back below zero before moving forward.
func BackIn(p float64) float64 {
	// (s+1)p - s, arranged so p == 1 evaluates to exactly 1.
	return p * p * (p + backOvershoot*(p-1))
}

// BackOut overshoots past one before settling.
func BackOut(p float64) float64 {
	q := p - 1
	return q*q*(q+backOvershoot*(q+1)) + 1
}

// BackInOut pulls back, then overshoots.
func BackInOut(p float64) float64 {
	if p < 0.5 {
		q := 2 * p
		return q * q * (q + backInOutOvershoot*(q-1)) / 2
	}
	q := 2 * (p - 1)
	return q*q*(q+backInOutOvershoot*(q+1))/2 + 1
}

// BounceOut approximates a ball dropped onto the floor.
func BounceOut(p float64) float64 {
	switch {
	case p == 1:
		// The last segment lands a few ulps away from 1.
		return 1
	case p < 1/bounceSpan:
		return bounceScale * p * p
	case p < 2/bounceSpan:
		q := p - 1.5/bounceSpan
		return bounceScale*q*q + 0.75
	case p < 2.5/bounceSpan:
		q := p - 2.25/bounceSpan
		return bounceScale*q*q + 0.9375
	default:
		q := p - 2.625/bounceSpan
		return bounceScale*q*q + 0.984375
	}
}

// BounceIn is BounceOut played backwards.
func BounceIn(p float64) float64 {
	return 1 - BounceOut(1-p)
}

// BounceInOut bounces into the midpoint and out of it.
func BounceInOut(p float64) float64 {
	if p < 0.5 {
		return (1 - BounceOut(1-2*p)) / 2
	}
	return (1 + BounceOut(2*p-1)) / 2
}
