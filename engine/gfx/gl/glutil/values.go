package glutil

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Values is a uniform value flattened to one component slice. Exactly one
// of the slices is set.
type Values struct {
	Float []float32
	Int   []int32
	Uint  []uint32
}

// Len returns the number of components.
func (v Values) Len() int {
	return len(v.Float) + len(v.Int) + len(v.Uint)
}

// Floats returns the components as float32, converting if needed.
func (v Values) Floats() []float32 {
	if v.Float != nil {
		return v.Float
	}
	out := make([]float32, 0, v.Len())
	for _, x := range v.Int {
		out = append(out, float32(x))
	}
	for _, x := range v.Uint {
		out = append(out, float32(x))
	}
	return out
}

// Ints returns the components as int32, converting if needed.
func (v Values) Ints() []int32 {
	if v.Int != nil {
		return v.Int
	}
	out := make([]int32, 0, v.Len())
	for _, x := range v.Float {
		out = append(out, int32(x))
	}
	for _, x := range v.Uint {
		out = append(out, int32(x))
	}
	return out
}

// Uints returns the components as uint32, converting if needed.
func (v Values) Uints() []uint32 {
	if v.Uint != nil {
		return v.Uint
	}
	out := make([]uint32, 0, v.Len())
	for _, x := range v.Float {
		out = append(out, uint32(x))
	}
	for _, x := range v.Int {
		out = append(out, uint32(x))
	}
	return out
}

// Flatten turns a uniform value into its flat components. Arrays are not
// reshaped: a []float32 holding three vec3 stays nine floats.
func Flatten(value any) (Values, error) {
	switch v := value.(type) {
	case float32:
		return Values{Float: []float32{v}}, nil
	case float64:
		return Values{Float: []float32{float32(v)}}, nil
	case int:
		return Values{Int: []int32{int32(v)}}, nil
	case int32:
		return Values{Int: []int32{v}}, nil
	case uint32:
		return Values{Uint: []uint32{v}}, nil
	case bool:
		if v {
			return Values{Int: []int32{1}}, nil
		}
		return Values{Int: []int32{0}}, nil
	case []float32:
		return Values{Float: v}, nil
	case []int32:
		return Values{Int: v}, nil
	case []uint32:
		return Values{Uint: v}, nil
	case mgl32.Vec2:
		return Values{Float: v[:]}, nil
	case mgl32.Vec3:
		return Values{Float: v[:]}, nil
	case mgl32.Vec4:
		return Values{Float: v[:]}, nil
	case mgl32.Mat2:
		return Values{Float: v[:]}, nil
	case mgl32.Mat3:
		return Values{Float: v[:]}, nil
	case mgl32.Mat4:
		return Values{Float: v[:]}, nil
	case []mgl32.Vec2:
		out := make([]float32, 0, 2*len(v))
		for _, x := range v {
			out = append(out, x[:]...)
		}
		return Values{Float: out}, nil
	case []mgl32.Vec3:
		out := make([]float32, 0, 3*len(v))
		for _, x := range v {
			out = append(out, x[:]...)
		}
		return Values{Float: out}, nil
	case []mgl32.Vec4:
		out := make([]float32, 0, 4*len(v))
		for _, x := range v {
			out = append(out, x[:]...)
		}
		return Values{Float: out}, nil
	case []mgl32.Mat4:
		out := make([]float32, 0, 16*len(v))
		for _, x := range v {
			out = append(out, x[:]...)
		}
		return Values{Float: out}, nil
	}
	return Values{}, fmt.Errorf("unsupported uniform value type %T", value)
}

// Count returns how many array elements of layout l the values fill.
func Count(l Layout, v Values) int {
	if l.Components == 0 {
		return 0
	}
	return v.Len() / l.Components
}
