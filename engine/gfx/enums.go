package gfx

// Enum is a graphics API constant. Values match the GL numeric constants so a
// backend can hand them to the driver untouched.
type Enum uint32

// Primitive is the topology a draw command rasterizes.
type Primitive Enum

const (
	Points        Primitive = 0x0000
	Lines         Primitive = 0x0001
	LineLoop      Primitive = 0x0002
	LineStrip     Primitive = 0x0003
	Triangles     Primitive = 0x0004
	TriangleStrip Primitive = 0x0005
	TriangleFan   Primitive = 0x0006
)

// TextureTarget is the binding point a texture lives on.
type TextureTarget Enum

const (
	Texture2D      TextureTarget = 0x0DE1
	Texture3D      TextureTarget = 0x806F
	Texture2DArray TextureTarget = 0x8C1A
	TextureCubeMap TextureTarget = 0x8513
)

// Is3D reports whether uploads to t take width, height and depth.
func (t TextureTarget) Is3D() bool { return t == Texture3D || t == Texture2DArray }

// Pixel formats.
const (
	Red            Enum = 0x1903
	RG             Enum = 0x8227
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	DepthComponent Enum = 0x1902
)

// Sized internal formats.
const (
	R8               Enum = 0x8229
	RG8              Enum = 0x822B
	RGB8             Enum = 0x8051
	RGBA8            Enum = 0x8058
	R16F             Enum = 0x822D
	RGBA16F          Enum = 0x881A
	RGBA32F          Enum = 0x8814
	DepthComponent24 Enum = 0x81A6
)

// Component data types, also used as index types.
const (
	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406
	HalfFloat     Enum = 0x140B
)

// Sampling filters.
const (
	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703
)

// Wrap modes.
const (
	Repeat         Enum = 0x2901
	ClampToEdge    Enum = 0x812F
	MirroredRepeat Enum = 0x8370
)

// Texture parameter names.
const (
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	TextureWrapR     Enum = 0x8072
)

// Indexed buffer binding targets.
const (
	UniformBuffer           Enum = 0x8A11
	TransformFeedbackBuffer Enum = 0x8C8E
)

// IsMipmap reports whether a minification filter samples mip levels.
func IsMipmap(filter Enum) bool {
	switch filter {
	case NearestMipmapNearest, LinearMipmapNearest, NearestMipmapLinear, LinearMipmapLinear:
		return true
	}
	return false
}
