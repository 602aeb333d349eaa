// Package props turns the structured values a tween can be configured with
// into flat, ordered sets of named scalar fields.
package props

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/math/f32"
)

// Field is one named scalar.
type Field struct {
	Name  string
	Value float64
}

// Set is an ordered mapping from field name to value.
type Set []Field

// Value is one of the shapes a tween accepts as its destination (or source,
// for From tweens). The set of shapes is closed: Vec2, Vec3, Vec4, Quat,
// Color, Map and Set.
type Value interface {
	Fields() Set
	sealed()
}

// Get returns the value stored under name.
func (s Set) Get(name string) (float64, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Has reports whether name is part of the set.
func (s Set) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Names returns the field names in order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Clone returns a copy that shares no storage with s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

func (s Set) Fields() Set { return s }
func (Set) sealed()         {}

// Of builds a one-field Set. Use With to add more fields.
func Of(name string, value float64) Set {
	return Set{{Name: name, Value: value}}
}

// With returns s with name set to value, appending the field when it is new.
func (s Set) With(name string, value float64) Set {
	out := s.Clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Name: name, Value: value})
}

type Vec2 struct{ X, Y float64 }

func (v Vec2) Fields() Set { return Set{{"x", v.X}, {"y", v.Y}} }
func (Vec2) sealed()       {}

type Vec3 struct{ X, Y, Z float64 }

func (v Vec3) Fields() Set { return Set{{"x", v.X}, {"y", v.Y}, {"z", v.Z}} }
func (Vec3) sealed()       {}

type Vec4 struct{ X, Y, Z, W float64 }

func (v Vec4) Fields() Set { return Set{{"x", v.X}, {"y", v.Y}, {"z", v.Z}, {"w", v.W}} }
func (Vec4) sealed()       {}

// Quat decomposes like Vec4; rotation tweens read w to tell an explicit
// quaternion apart from Euler angles.
type Quat struct{ X, Y, Z, W float64 }

func (q Quat) Fields() Set { return Set{{"x", q.X}, {"y", q.Y}, {"z", q.Z}, {"w", q.W}} }
func (Quat) sealed()       {}

// Color is an RGB color with an optional alpha channel.
type Color struct {
	R, G, B, A float64
	HasAlpha   bool
}

func RGB(r, g, b float64) Color     { return Color{R: r, G: g, B: b} }
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a, HasAlpha: true} }

func (c Color) Fields() Set {
	s := Set{{"r", c.R}, {"g", c.G}, {"b", c.B}}
	if c.HasAlpha {
		s = append(s, Field{"a", c.A})
	}
	return s
}
func (Color) sealed() {}

// Map is a plain name to value mapping. Fields are ordered by name so the
// resulting Set is deterministic.
type Map map[string]float64

func (m Map) Fields() Set {
	s := make(Set, 0, len(m))
	for k, v := range m {
		s = append(s, Field{k, v})
	}
	sort.Slice(s, func(i, j int) bool { return s[i].Name < s[j].Name })
	return s
}
func (Map) sealed() {}

// FromColor converts any image/color value to normalized RGBA. Alpha is
// always present since color.Color always defines it.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return RGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, float64(a)/0xffff)
}

func FromMathVec2(v dmath.Vec2) Vec2 { return Vec2{X: v.X, Y: v.Y} }

func FromMGLVec2(v mgl64.Vec2) Vec2 { return Vec2{X: v[0], Y: v[1]} }
func FromMGLVec3(v mgl64.Vec3) Vec3 { return Vec3{X: v[0], Y: v[1], Z: v[2]} }
func FromMGLVec4(v mgl64.Vec4) Vec4 { return Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }
func FromMGLQuat(q mgl64.Quat) Quat { return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W} }

func FromF32Vec2(v f32.Vec2) Vec2 { return Vec2{X: float64(v[0]), Y: float64(v[1])} }
func FromF32Vec3(v f32.Vec3) Vec3 {
	return Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
func FromF32Vec4(v f32.Vec4) Vec4 {
	return Vec4{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2]), W: float64(v[3])}
}
