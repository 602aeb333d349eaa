package tween

import "github.com/go-gl/mathgl/mgl64"

// eulerToQuat converts Euler angles in degrees, applied X then Y then Z.
func eulerToQuat(x, y, z float64) mgl64.Quat {
	return mgl64.AnglesToQuat(mgl64.DegToRad(z), mgl64.DegToRad(y), mgl64.DegToRad(x), mgl64.ZYX)
}

// axisOr returns the configured angle for axis, falling back to the
// target's current angle when the axis was left out.
func (t *Tween) axisOr(axis string) float64 {
	if v, ok := t.properties.Get(axis); ok {
		return v
	}
	return t.target.Field(axis)
}

func (t *Tween) targetEuler() mgl64.Quat {
	return eulerToQuat(t.target.Field("x"), t.target.Field("y"), t.target.Field("z"))
}

func (t *Tween) captureRotation() {
	configured := eulerToQuat(t.axisOr("x"), t.axisOr("y"), t.axisOr("z"))
	if t.fromMode {
		t.fromRotation = configured
		t.toRotation = t.targetEuler()
		return
	}
	if w, ok := t.properties.Get("w"); ok {
		t.fromRotation = mgl64.Quat{
			W: t.target.Field("w"),
			V: mgl64.Vec3{t.target.Field("x"), t.target.Field("y"), t.target.Field("z")},
		}
		t.toRotation = mgl64.Quat{W: w, V: mgl64.Vec3{t.axisOr("x"), t.axisOr("y"), t.axisOr("z")}}
		return
	}
	t.fromRotation = t.targetEuler()
	t.toRotation = configured
}

func isRotationAxis(name string) bool {
	switch name {
	case "x", "y", "z", "w":
		return true
	}
	return false
}
