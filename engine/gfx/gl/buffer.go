package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/hubastard/grovegl/engine/gfx/gl/glutil"
)

// VertexBuffer holds per-vertex or per-instance attribute data.
type VertexBuffer struct {
	id       uint32
	typ      gfx.Enum
	itemSize int
	numItems int
}

// NewVertexBuffer uploads data, a typed slice, as items of itemSize
// components each.
func NewVertexBuffer(itemSize int, data any) (*VertexBuffer, error) {
	typ, size, err := glutil.ElementType(data)
	if err != nil {
		return nil, err
	}
	b := &VertexBuffer{typ: typ, itemSize: itemSize}
	b.numItems = size / (glutil.TypeSize(typ) * itemSize)

	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ARRAY_BUFFER, size, ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b, nil
}

func (b *VertexBuffer) NumItems() int { return b.numItems }

func (b *VertexBuffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// IndexBuffer holds element indices. Its data type becomes the draw's
// index type.
type IndexBuffer struct {
	id       uint32
	typ      gfx.Enum
	numItems int
}

// NewIndexBuffer uploads []uint8, []uint16 or []uint32 indices.
func NewIndexBuffer(data any) (*IndexBuffer, error) {
	typ, size, err := glutil.ElementType(data)
	if err != nil {
		return nil, err
	}
	switch typ {
	case gfx.UnsignedByte, gfx.UnsignedShort, gfx.UnsignedInt:
	default:
		return nil, fmt.Errorf("index data must be unsigned, got %T", data)
	}
	b := &IndexBuffer{typ: typ, numItems: size / glutil.TypeSize(typ)}

	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, size, ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return b, nil
}

func (b *IndexBuffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// UniformBuffer backs a uniform block. It implements gfx.Buffer. The
// float layout must already follow std140.
type UniformBuffer struct {
	id   uint32
	size int
}

var _ gfx.Buffer = (*UniformBuffer)(nil)

func NewUniformBuffer(data []float32) *UniformBuffer {
	b := &UniformBuffer{size: 4 * len(data)}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.id)
	gl.BufferData(gl.UNIFORM_BUFFER, b.size, ptr(data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return b
}

// Set overwrites the buffer from offset (in floats).
func (b *UniformBuffer) Set(offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.id)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 4*offset, 4*len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (b *UniformBuffer) BindBase(base int) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, uint32(base), b.id)
}

func (b *UniformBuffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
