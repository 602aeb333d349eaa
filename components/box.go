package components

import (
	"github.com/automoto/doomerang-tween/easing"
	"github.com/yohamta/donburi"
)

// BoxBody is the tween target of an easing row. It lives outside component
// storage so the tween keeps a stable pointer.
type BoxBody struct {
	X     float64
	Y     float64
	Alpha float64
}

// BoxData describes one easing row
type BoxData struct {
	Index  int
	Name   string
	Easing easing.Func
	Body   *BoxBody

	// Track the box travels along
	StartX float64
	EndX   float64
}

var Box = donburi.NewComponentType[BoxData]()
