// Package easing holds the curves that remap normalized progress k in [0,1]
// to eased progress. Every curve is a pure function and can be shared freely
// between tweens.
package easing

import "math"

// Func maps normalized progress to eased progress. The result is not
// required to stay inside [0,1] (Back and Elastic overshoot).
type Func func(k float64) float64

const (
	backS        = 1.70158
	backInOutS   = backS * 1.525
	elasticP     = 0.4
	elasticS     = elasticP / 4
	bounceFactor = 7.5625
	bounceDiv    = 2.75
)

// Linear is the identity curve and the default easing of a tween.
func Linear(k float64) float64 { return k }

func LinearIn(k float64) float64    { return k }
func LinearOut(k float64) float64   { return k }
func LinearInOut(k float64) float64 { return k }

func QuadraticIn(k float64) float64  { return k * k }
func QuadraticOut(k float64) float64 { return k * (2 - k) }
func QuadraticInOut(k float64) float64 {
	k *= 2
	if k < 1 {
		return 0.5 * k * k
	}
	k--
	return -0.5 * (k*(k-2) - 1)
}

func CubicIn(k float64) float64 { return k * k * k }
func CubicOut(k float64) float64 {
	k--
	return k*k*k + 1
}
func CubicInOut(k float64) float64 {
	k *= 2
	if k < 1 {
		return 0.5 * k * k * k
	}
	k -= 2
	return 0.5 * (k*k*k + 2)
}

func QuarticIn(k float64) float64 { return k * k * k * k }
func QuarticOut(k float64) float64 {
	k--
	return 1 - k*k*k*k
}
func QuarticInOut(k float64) float64 {
	k *= 2
	if k < 1 {
		return 0.5 * k * k * k * k
	}
	k -= 2
	return -0.5 * (k*k*k*k - 2)
}

func QuinticIn(k float64) float64 { return k * k * k * k * k }
func QuinticOut(k float64) float64 {
	k--
	return k*k*k*k*k + 1
}
func QuinticInOut(k float64) float64 {
	k *= 2
	if k < 1 {
		return 0.5 * k * k * k * k * k
	}
	k -= 2
	return 0.5 * (k*k*k*k*k + 2)
}

// The Sine, Exponential and Elastic families return exact values at the
// boundaries so a finished tween lands on its end value bit for bit.

func SineIn(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	return 1 - math.Cos(k*math.Pi/2)
}

func SineOut(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	return math.Sin(k * math.Pi / 2)
}

func SineInOut(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	return 0.5 * (1 - math.Cos(math.Pi*k))
}

func ExponentialIn(k float64) float64 {
	if k == 0 {
		return 0
	}
	return math.Pow(1024, k-1)
}

func ExponentialOut(k float64) float64 {
	if k == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*k)
}

func ExponentialInOut(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	k *= 2
	if k < 1 {
		return 0.5 * math.Pow(1024, k-1)
	}
	return 0.5 * (-math.Pow(2, -10*(k-1)) + 2)
}

func CircularIn(k float64) float64 { return 1 - math.Sqrt(1-k*k) }
func CircularOut(k float64) float64 {
	k--
	return math.Sqrt(1 - k*k)
}
func CircularInOut(k float64) float64 {
	k *= 2
	if k < 1 {
		return -0.5 * (math.Sqrt(1-k*k) - 1)
	}
	k -= 2
	return 0.5 * (math.Sqrt(1-k*k) + 1)
}

func ElasticIn(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	k--
	return -(math.Pow(2, 10*k) * math.Sin((k-elasticS)*(2*math.Pi)/elasticP))
}

func ElasticOut(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	return math.Pow(2, -10*k)*math.Sin((k-elasticS)*(2*math.Pi)/elasticP) + 1
}

func ElasticInOut(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	k *= 2
	if k < 1 {
		k--
		return -0.5 * (math.Pow(2, 10*k) * math.Sin((k-elasticS)*(2*math.Pi)/elasticP))
	}
	k--
	return math.Pow(2, -10*k)*math.Sin((k-elasticS)*(2*math.Pi)/elasticP)*0.5 + 1
}

func BackIn(k float64) float64 { return k * k * ((backS+1)*k - backS) }
func BackOut(k float64) float64 {
	k--
	return k*k*((backS+1)*k+backS) + 1
}
func BackInOut(k float64) float64 {
	k *= 2
	if k < 1 {
		return 0.5 * (k * k * ((backInOutS+1)*k - backInOutS))
	}
	k -= 2
	return 0.5 * (k*k*((backInOutS+1)*k+backInOutS) + 2)
}

func BounceOut(k float64) float64 {
	switch {
	case k < 1/bounceDiv:
		return bounceFactor * k * k
	case k < 2/bounceDiv:
		k -= 1.5 / bounceDiv
		return bounceFactor*k*k + 0.75
	case k < 2.5/bounceDiv:
		k -= 2.25 / bounceDiv
		return bounceFactor*k*k + 0.9375
	}
	k -= 2.625 / bounceDiv
	return bounceFactor*k*k + 0.984375
}

// BounceIn is BounceOut played backwards.
func BounceIn(k float64) float64 { return 1 - BounceOut(1-k) }

func BounceInOut(k float64) float64 {
	if k < 0.5 {
		return BounceIn(k*2) * 0.5
	}
	return BounceOut(k*2-1)*0.5 + 0.5
}
