package easing

import "github.com/tanema/gween/ease"

// FromGween adapts a gween curve, which works on (time, begin, change,
// duration), to a normalized Func.
func FromGween(f ease.TweenFunc) Func {
	return func(k float64) float64 {
		return float64(f(float32(k), 0, 1, 1))
	}
}
