package tweenworld

import "github.com/solarlune/resolv"

// ObjectTarget exposes a resolv object's x, y, w and h to tweens and
// refreshes its space cells after each frame's writes.
type ObjectTarget struct {
	Object *resolv.Object
}

func (o ObjectTarget) Field(name string) float64 {
	switch name {
	case "x":
		return o.Object.X
	case "y":
		return o.Object.Y
	case "w":
		return o.Object.W
	case "h":
		return o.Object.H
	}
	return 0
}

func (o ObjectTarget) SetField(name string, v float64) {
	switch name {
	case "x":
		o.Object.X = v
	case "y":
		o.Object.Y = v
	case "w":
		o.Object.W = v
	case "h":
		o.Object.H = v
	}
}

func (o ObjectTarget) Flush() {
	o.Object.Update()
}
