package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SpinnerBody is a rotation target. Euler angles are kept in degrees and the
// interpolated orientation arrives through SetLocalRotation.
type SpinnerBody struct {
	Euler    mgl64.Vec3
	Rotation mgl64.Quat
}

func NewSpinnerBody() *SpinnerBody {
	return &SpinnerBody{Rotation: mgl64.QuatIdent()}
}

func (s *SpinnerBody) Field(name string) float64 {
	switch name {
	case "x":
		return s.Euler[0]
	case "y":
		return s.Euler[1]
	case "z":
		return s.Euler[2]
	}
	return 0
}

func (s *SpinnerBody) SetField(name string, v float64) {
	switch name {
	case "x":
		s.Euler[0] = v
	case "y":
		s.Euler[1] = v
	case "z":
		s.Euler[2] = v
	}
}

func (s *SpinnerBody) SetLocalRotation(q mgl64.Quat) {
	s.Rotation = q
}

// Angle returns the rotation about the screen axis in radians.
func (s *SpinnerBody) Angle() float64 {
	axis := s.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(axis[1], axis[0])
}

type SpinnerData struct {
	X, Y float64
	Size float64
	Body *SpinnerBody
}

var Spinner = donburi.NewComponentType[SpinnerData]()
