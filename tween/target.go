package tween

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Target is the object a tween writes into. Unknown names read as zero and
// writes to them are dropped; nothing is validated per frame.
type Target interface {
	Field(name string) float64
	SetField(name string, v float64)
}

// Flusher is implemented by targets that need a hook after each frame's
// writes, e.g. to mark a transform dirty or re-cell a collision object.
type Flusher interface {
	Flush()
}

// Rotator receives the interpolated orientation of a rotation tween. Euler
// angles, in degrees, are read from the target's x, y and z fields.
type Rotator interface {
	SetLocalRotation(q mgl64.Quat)
}

// Map is a Target backed by a plain map.
type Map map[string]float64

func (m Map) Field(name string) float64       { return m[name] }
func (m Map) SetField(name string, v float64) { m[name] = v }

// structTarget binds the float fields of a struct once so that per-frame
// access is a map lookup rather than a reflective search.
type structTarget struct {
	fields map[string]reflect.Value
}

// Fields binds the float32 and float64 fields of the struct ptr points to.
// Field names match case-insensitively, so "x" addresses a field X.
func Fields(ptr any) (Target, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrNotStruct, ptr)
	}
	elem := v.Elem()
	st := &structTarget{fields: make(map[string]reflect.Value)}
	typ := elem.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		switch sf.Type.Kind() {
		case reflect.Float32, reflect.Float64:
			st.fields[strings.ToLower(sf.Name)] = elem.Field(i)
		}
	}
	return st, nil
}

func (s *structTarget) Field(name string) float64 {
	f, ok := s.fields[strings.ToLower(name)]
	if !ok {
		return 0
	}
	return f.Float()
}

func (s *structTarget) SetField(name string, v float64) {
	if f, ok := s.fields[strings.ToLower(name)]; ok {
		f.SetFloat(v)
	}
}
