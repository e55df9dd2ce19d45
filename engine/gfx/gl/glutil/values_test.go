package glutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Values
	}{
		{"float32", float32(0.5), Values{Float: []float32{0.5}}},
		{"float64", 2.0, Values{Float: []float32{2}}},
		{"int", 3, Values{Int: []int32{3}}},
		{"uint32", uint32(7), Values{Uint: []uint32{7}}},
		{"true", true, Values{Int: []int32{1}}},
		{"false", false, Values{Int: []int32{0}}},
		{"vec3", mgl32.Vec3{1, 2, 3}, Values{Float: []float32{1, 2, 3}}},
		{"flat array", []float32{1, 2, 3, 4, 5, 6}, Values{Float: []float32{1, 2, 3, 4, 5, 6}}},
		{"vec2 slice", []mgl32.Vec2{{1, 2}, {3, 4}}, Values{Float: []float32{1, 2, 3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlattenMat4(t *testing.T) {
	got, err := Flatten(mgl32.Ident4())
	require.NoError(t, err)
	require.Len(t, got.Float, 16)
	assert.Equal(t, float32(1), got.Float[0])
	assert.Equal(t, float32(1), got.Float[15])
	assert.Equal(t, 1, Count(UniformLayout(typeFloatMat4), got))
}

func TestFlattenUnsupported(t *testing.T) {
	_, err := Flatten("nope")
	assert.Error(t, err)
}

func TestCountDoesNotReshape(t *testing.T) {
	v, err := Flatten([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 3, Count(UniformLayout(typeFloatVec3), v))
	assert.Equal(t, 9, Count(UniformLayout(typeFloat), v))
	assert.Equal(t, 0, Count(UniformLayout(0), v))
}

func TestValuesConversion(t *testing.T) {
	v := Values{Float: []float32{1, 2}}
	assert.Equal(t, []int32{1, 2}, v.Ints())
	assert.Equal(t, []uint32{1, 2}, v.Uints())

	i := Values{Int: []int32{4}}
	assert.Equal(t, []float32{4}, i.Floats())
	assert.Equal(t, []int32{4}, i.Ints())
}

func TestUniformLayout(t *testing.T) {
	assert.Equal(t, Layout{Kind: KindFloat, Components: 9, Columns: 3}, UniformLayout(typeFloatMat3))
	assert.Equal(t, Layout{Kind: KindBool, Components: 2}, UniformLayout(typeBoolVec2))
	assert.Equal(t, Layout{Kind: KindSampler, Components: 1}, UniformLayout(typeSampler2DArray))
	assert.True(t, IsSampler(typeUintSampler3D))
	assert.False(t, IsSampler(typeFloatVec4))
}
