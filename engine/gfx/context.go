package gfx

import "image"

// Limits are the device constants that size a DrawCall's binding tables.
type Limits struct {
	MaxUniforms       int `yaml:"max_uniforms"`
	MaxUniformBuffers int `yaml:"max_uniform_buffers"`
	MaxTextureUnits   int `yaml:"max_texture_units"`
}

// Context is the slice of the graphics API this package drives. All calls
// happen on the thread owning the context; implementations need no locking.
type Context interface {
	Limits() Limits

	CreateTexture() uint32
	DeleteTexture(h uint32)
	ActiveTexture(unit int)
	// BindTexture with h == 0 unbinds the target.
	BindTexture(target TextureTarget, h uint32)
	TexParameter(target TextureTarget, param Enum, value Enum)
	// TexImage2D uploads raw pixel data of the given size. data may be nil to
	// allocate storage only.
	TexImage2D(target TextureTarget, internalFormat, format, typ Enum, width, height int, data any)
	// TexImage2DImage uploads a decoded image; its size comes from img.Bounds().
	TexImage2DImage(target TextureTarget, internalFormat, format, typ Enum, img image.Image, flipY bool)
	TexImage3D(target TextureTarget, internalFormat, format, typ Enum, width, height, depth int, data any)
	GenerateMipmap(target TextureTarget)

	DrawArrays(mode Primitive, first, count int)
	DrawElements(mode Primitive, count int, indexType Enum, offset int)
	DrawArraysInstanced(mode Primitive, first, count, instances int)
	DrawElementsInstanced(mode Primitive, count int, indexType Enum, offset, instances int)

	BeginTransformFeedback(mode Primitive)
	EndTransformFeedback()
	// BindBufferBase with buffer == 0 clears the indexed binding.
	BindBufferBase(target Enum, index int, buffer uint32)
}

// Program is a linked shader program. It is owned by the caller and only
// borrowed by a DrawCall during Draw.
type Program interface {
	Bind()
	Uniform(name string, value any)
	UniformBlock(name string, base int)
	// SamplerUnit returns the texture unit the program assigned to a sampler.
	SamplerUnit(name string) (int, bool)
	SamplerCount() int
}

// VertexSource is a vertex array: attribute bindings plus the counts the
// draw command needs.
type VertexSource interface {
	Bind()
	NumElements() int
	NumInstances() int
	IndexType() Enum
	Indexed() bool
	Instanced() bool
}

// Buffer is anything bindable at an indexed uniform buffer base.
type Buffer interface {
	BindBase(base int)
}

// FeedbackTarget is a transform feedback object. CaptureBases lists the
// TransformFeedbackBuffer indices its capture buffers occupy.
type FeedbackTarget interface {
	Bind()
	CaptureBases() []int
}
