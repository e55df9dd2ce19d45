// Package glutil holds the context-free parts of the GL backend: uniform
// value flattening, uniform type layouts, pixel conversion and buffer
// element typing. Nothing here calls into the driver.
package glutil

// GL uniform type constants as reported by glGetActiveUniform.
const (
	typeFloat     = 0x1406
	typeFloatVec2 = 0x8B50
	typeFloatVec3 = 0x8B51
	typeFloatVec4 = 0x8B52
	typeInt       = 0x1404
	typeIntVec2   = 0x8B53
	typeIntVec3   = 0x8B54
	typeIntVec4   = 0x8B55
	typeBool      = 0x8B56
	typeBoolVec2  = 0x8B57
	typeBoolVec3  = 0x8B58
	typeBoolVec4  = 0x8B59
	typeFloatMat2 = 0x8B5A
	typeFloatMat3 = 0x8B5B
	typeFloatMat4 = 0x8B5C
	typeUint      = 0x1405
	typeUintVec2  = 0x8DC6
	typeUintVec3  = 0x8DC7
	typeUintVec4  = 0x8DC8

	typeSampler2D            = 0x8B5E
	typeSampler3D            = 0x8B5F
	typeSamplerCube          = 0x8B60
	typeSampler2DShadow      = 0x8B62
	typeSampler2DArray       = 0x8DC1
	typeSampler2DArrayShadow = 0x8DC4
	typeSamplerCubeShadow    = 0x8DC5
	typeIntSampler2D         = 0x8DCA
	typeIntSampler3D         = 0x8DCB
	typeIntSamplerCube       = 0x8DCC
	typeIntSampler2DArray    = 0x8DCF
	typeUintSampler2D        = 0x8DD2
	typeUintSampler3D        = 0x8DD3
	typeUintSamplerCube      = 0x8DD4
	typeUintSampler2DArray   = 0x8DD7
)

// Kind is the scalar family a uniform is uploaded as.
type Kind int

const (
	KindUnknown Kind = iota
	KindFloat
	KindInt
	KindUint
	KindBool
	KindSampler
)

// Layout describes how a GL uniform type consumes flat components.
type Layout struct {
	Kind Kind
	// Components per element: 1..4 for scalars and vectors, 4/9/16 for
	// matrices.
	Components int
	// Columns is the matrix dimension, 0 for non-matrix types.
	Columns int
}

// UniformLayout returns the layout of a GL uniform type.
func UniformLayout(glType uint32) Layout {
	switch glType {
	case typeFloat:
		return Layout{Kind: KindFloat, Components: 1}
	case typeFloatVec2:
		return Layout{Kind: KindFloat, Components: 2}
	case typeFloatVec3:
		return Layout{Kind: KindFloat, Components: 3}
	case typeFloatVec4:
		return Layout{Kind: KindFloat, Components: 4}
	case typeFloatMat2:
		return Layout{Kind: KindFloat, Components: 4, Columns: 2}
	case typeFloatMat3:
		return Layout{Kind: KindFloat, Components: 9, Columns: 3}
	case typeFloatMat4:
		return Layout{Kind: KindFloat, Components: 16, Columns: 4}
	case typeInt:
		return Layout{Kind: KindInt, Components: 1}
	case typeIntVec2:
		return Layout{Kind: KindInt, Components: 2}
	case typeIntVec3:
		return Layout{Kind: KindInt, Components: 3}
	case typeIntVec4:
		return Layout{Kind: KindInt, Components: 4}
	case typeBool:
		return Layout{Kind: KindBool, Components: 1}
	case typeBoolVec2:
		return Layout{Kind: KindBool, Components: 2}
	case typeBoolVec3:
		return Layout{Kind: KindBool, Components: 3}
	case typeBoolVec4:
		return Layout{Kind: KindBool, Components: 4}
	case typeUint:
		return Layout{Kind: KindUint, Components: 1}
	case typeUintVec2:
		return Layout{Kind: KindUint, Components: 2}
	case typeUintVec3:
		return Layout{Kind: KindUint, Components: 3}
	case typeUintVec4:
		return Layout{Kind: KindUint, Components: 4}
	}
	if IsSampler(glType) {
		return Layout{Kind: KindSampler, Components: 1}
	}
	return Layout{}
}

// IsSampler reports whether a GL uniform type is a texture sampler.
func IsSampler(glType uint32) bool {
	switch glType {
	case typeSampler2D, typeSampler3D, typeSamplerCube, typeSampler2DShadow,
		typeSampler2DArray, typeSampler2DArrayShadow, typeSamplerCubeShadow,
		typeIntSampler2D, typeIntSampler3D, typeIntSamplerCube, typeIntSampler2DArray,
		typeUintSampler2D, typeUintSampler3D, typeUintSamplerCube, typeUintSampler2DArray:
		return true
	}
	return false
}
