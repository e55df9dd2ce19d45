package glbackend

import (
	"image"
	"log/slog"
	"reflect"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/hubastard/grovegl/engine/gfx/gl/glutil"
)

// Context implements gfx.Context on the current OpenGL 3.3 core context.
// gl.Init must have been called on the owning thread.
type Context struct {
	limits gfx.Limits
}

var _ gfx.Context = (*Context)(nil)

// NewContext queries the device limits of the current context.
func NewContext() *Context {
	var vertexComponents, fragmentComponents, uniformBuffers, textureUnits int32
	gl.GetIntegerv(gl.MAX_VERTEX_UNIFORM_COMPONENTS, &vertexComponents)
	gl.GetIntegerv(gl.MAX_FRAGMENT_UNIFORM_COMPONENTS, &fragmentComponents)
	gl.GetIntegerv(gl.MAX_UNIFORM_BUFFER_BINDINGS, &uniformBuffers)
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &textureUnits)

	c := &Context{limits: gfx.Limits{
		MaxUniforms:       int(max(vertexComponents, fragmentComponents) / 4),
		MaxUniformBuffers: int(uniformBuffers),
		MaxTextureUnits:   int(textureUnits),
	}}
	gfx.Logger().Info("glbackend: context limits",
		slog.Int("maxUniforms", c.limits.MaxUniforms),
		slog.Int("maxUniformBuffers", c.limits.MaxUniformBuffers),
		slog.Int("maxTextureUnits", c.limits.MaxTextureUnits))
	return c
}

func (c *Context) Limits() gfx.Limits { return c.limits }

func (c *Context) CreateTexture() uint32 {
	var h uint32
	gl.GenTextures(1, &h)
	return h
}

func (c *Context) DeleteTexture(h uint32) { gl.DeleteTextures(1, &h) }

func (c *Context) ActiveTexture(unit int) { gl.ActiveTexture(gl.TEXTURE0 + uint32(unit)) }

func (c *Context) BindTexture(target gfx.TextureTarget, h uint32) {
	gl.BindTexture(uint32(target), h)
}

func (c *Context) TexParameter(target gfx.TextureTarget, param gfx.Enum, value gfx.Enum) {
	gl.TexParameteri(uint32(target), uint32(param), int32(value))
}

func (c *Context) TexImage2D(target gfx.TextureTarget, internalFormat, format, typ gfx.Enum, width, height int, data any) {
	gl.TexImage2D(uint32(target), 0, int32(internalFormat), int32(width), int32(height), 0,
		uint32(format), uint32(typ), ptr(data))
}

// TexImage2DImage converts img to RGBA8 on the CPU; format and typ should
// describe that layout (RGBA, UnsignedByte).
func (c *Context) TexImage2DImage(target gfx.TextureTarget, internalFormat, format, typ gfx.Enum, img image.Image, flipY bool) {
	m := glutil.ToRGBA(img, flipY)
	b := m.Bounds()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(uint32(target), 0, int32(internalFormat), int32(b.Dx()), int32(b.Dy()), 0,
		uint32(format), uint32(typ), ptr(m.Pix))
}

func (c *Context) TexImage3D(target gfx.TextureTarget, internalFormat, format, typ gfx.Enum, width, height, depth int, data any) {
	gl.TexImage3D(uint32(target), 0, int32(internalFormat), int32(width), int32(height), int32(depth), 0,
		uint32(format), uint32(typ), ptr(data))
}

func (c *Context) GenerateMipmap(target gfx.TextureTarget) { gl.GenerateMipmap(uint32(target)) }

func (c *Context) DrawArrays(mode gfx.Primitive, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (c *Context) DrawElements(mode gfx.Primitive, count int, indexType gfx.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(indexType), gl.PtrOffset(offset))
}

func (c *Context) DrawArraysInstanced(mode gfx.Primitive, first, count, instances int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

func (c *Context) DrawElementsInstanced(mode gfx.Primitive, count int, indexType gfx.Enum, offset, instances int) {
	gl.DrawElementsInstanced(uint32(mode), int32(count), uint32(indexType), gl.PtrOffset(offset), int32(instances))
}

func (c *Context) BeginTransformFeedback(mode gfx.Primitive) { gl.BeginTransformFeedback(uint32(mode)) }
func (c *Context) EndTransformFeedback()                     { gl.EndTransformFeedback() }

func (c *Context) BindBufferBase(target gfx.Enum, index int, buffer uint32) {
	gl.BindBufferBase(uint32(target), uint32(index), buffer)
}

// ptr returns a driver pointer to the first element of a slice, or nil for
// nil and empty data.
func ptr(data any) unsafe.Pointer {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice && v.Len() == 0 {
		return nil
	}
	return gl.Ptr(data)
}
