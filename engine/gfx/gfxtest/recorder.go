// Package gfxtest provides a recording gfx.Context and fake collaborators
// for testing code that drives the gfx package without a GPU.
package gfxtest

import (
	"image"

	"github.com/hubastard/grovegl/engine/gfx"
)

// Call is one recorded method call.
type Call struct {
	Name string
	Args []any
}

// Recorder implements gfx.Context by appending every call to Calls. The
// fakes below record into the same Recorder so a test sees one ordered log.
type Recorder struct {
	Calls []Call
	Limit gfx.Limits

	nextHandle uint32
}

// NewRecorder returns a recorder reporting the given limits.
func NewRecorder(limits gfx.Limits) *Recorder {
	return &Recorder{Limit: limits}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Filter returns the recorded calls named name.
func (r *Recorder) Filter(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// gfx.Context

func (r *Recorder) Limits() gfx.Limits { return r.Limit }

func (r *Recorder) CreateTexture() uint32 {
	r.nextHandle++
	r.record("CreateTexture")
	return r.nextHandle
}

func (r *Recorder) DeleteTexture(h uint32) { r.record("DeleteTexture", h) }
func (r *Recorder) ActiveTexture(unit int) { r.record("ActiveTexture", unit) }

func (r *Recorder) BindTexture(target gfx.TextureTarget, h uint32) {
	r.record("BindTexture", target, h)
}

func (r *Recorder) TexParameter(target gfx.TextureTarget, param gfx.Enum, value gfx.Enum) {
	r.record("TexParameter", target, param, value)
}

func (r *Recorder) TexImage2D(target gfx.TextureTarget, internalFormat, format, typ gfx.Enum, width, height int, data any) {
	r.record("TexImage2D", target, internalFormat, format, typ, width, height, data)
}

func (r *Recorder) TexImage2DImage(target gfx.TextureTarget, internalFormat, format, typ gfx.Enum, img image.Image, flipY bool) {
	r.record("TexImage2DImage", target, internalFormat, format, typ, img, flipY)
}

func (r *Recorder) TexImage3D(target gfx.TextureTarget, internalFormat, format, typ gfx.Enum, width, height, depth int, data any) {
	r.record("TexImage3D", target, internalFormat, format, typ, width, height, depth, data)
}

func (r *Recorder) GenerateMipmap(target gfx.TextureTarget) { r.record("GenerateMipmap", target) }

func (r *Recorder) DrawArrays(mode gfx.Primitive, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode gfx.Primitive, count int, indexType gfx.Enum, offset int) {
	r.record("DrawElements", mode, count, indexType, offset)
}

func (r *Recorder) DrawArraysInstanced(mode gfx.Primitive, first, count, instances int) {
	r.record("DrawArraysInstanced", mode, first, count, instances)
}

func (r *Recorder) DrawElementsInstanced(mode gfx.Primitive, count int, indexType gfx.Enum, offset, instances int) {
	r.record("DrawElementsInstanced", mode, count, indexType, offset, instances)
}

func (r *Recorder) BeginTransformFeedback(mode gfx.Primitive) { r.record("BeginTransformFeedback", mode) }
func (r *Recorder) EndTransformFeedback()                     { r.record("EndTransformFeedback") }

func (r *Recorder) BindBufferBase(target gfx.Enum, index int, buffer uint32) {
	r.record("BindBufferBase", target, index, buffer)
}

// --- fakes ---

// Program is a fake gfx.Program with a fixed sampler table.
type Program struct {
	Rec      *Recorder
	Samplers map[string]int
}

func (p *Program) Bind() { p.Rec.record("Program.Bind") }

func (p *Program) Uniform(name string, value any) {
	p.Rec.record("Program.Uniform", name, value)
}

func (p *Program) UniformBlock(name string, base int) {
	p.Rec.record("Program.UniformBlock", name, base)
}

func (p *Program) SamplerUnit(name string) (int, bool) {
	unit, ok := p.Samplers[name]
	return unit, ok
}

func (p *Program) SamplerCount() int { return len(p.Samplers) }

// VertexArray is a fake gfx.VertexSource.
type VertexArray struct {
	Rec       *Recorder
	Elements  int
	Instances int
	Index     gfx.Enum
	IsIndexed bool
	IsInst    bool
}

func (v *VertexArray) Bind()               { v.Rec.record("VertexArray.Bind") }
func (v *VertexArray) NumElements() int    { return v.Elements }
func (v *VertexArray) NumInstances() int   { return v.Instances }
func (v *VertexArray) IndexType() gfx.Enum { return v.Index }
func (v *VertexArray) Indexed() bool       { return v.IsIndexed }
func (v *VertexArray) Instanced() bool     { return v.IsInst }

// Buffer is a fake gfx.Buffer.
type Buffer struct {
	Rec  *Recorder
	Name string
}

func (b *Buffer) BindBase(base int) { b.Rec.record("Buffer.BindBase", b.Name, base) }

// Feedback is a fake gfx.FeedbackTarget.
type Feedback struct {
	Rec   *Recorder
	Bases []int
}

func (f *Feedback) Bind()               { f.Rec.record("Feedback.Bind") }
func (f *Feedback) CaptureBases() []int { return f.Bases }
