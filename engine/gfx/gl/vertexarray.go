package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegl/engine/gfx"
)

// VertexArray records attribute bindings and the counts a draw needs. It
// implements gfx.VertexSource.
type VertexArray struct {
	id           uint32
	numElements  int
	numInstances int
	indexType    gfx.Enum
	indexed      bool
	instanced    bool
}

var _ gfx.VertexSource = (*VertexArray)(nil)

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

// VertexAttributeBuffer feeds attribute location from buf, one item per
// vertex. Without an index buffer the vertex count follows buf.
func (va *VertexArray) VertexAttributeBuffer(location uint32, buf *VertexBuffer) *VertexArray {
	va.attribute(location, buf, 0)
	if !va.indexed {
		va.numElements = buf.numItems
	}
	return va
}

// InstanceAttributeBuffer feeds attribute location from buf, one item per
// instance.
func (va *VertexArray) InstanceAttributeBuffer(location uint32, buf *VertexBuffer) *VertexArray {
	va.attribute(location, buf, 1)
	va.instanced = true
	va.numInstances = buf.numItems
	return va
}

// IndexBuffer switches the array to indexed drawing.
func (va *VertexArray) IndexBuffer(buf *IndexBuffer) *VertexArray {
	gl.BindVertexArray(va.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.id)
	gl.BindVertexArray(0)

	va.indexed = true
	va.indexType = buf.typ
	va.numElements = buf.numItems
	return va
}

func (va *VertexArray) attribute(location uint32, buf *VertexBuffer, divisor uint32) {
	gl.BindVertexArray(va.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.id)
	if buf.typ == gfx.Float {
		gl.VertexAttribPointerWithOffset(location, int32(buf.itemSize), uint32(buf.typ), false, 0, 0)
	} else {
		gl.VertexAttribIPointerWithOffset(location, int32(buf.itemSize), uint32(buf.typ), 0, 0)
	}
	gl.EnableVertexAttribArray(location)
	if divisor > 0 {
		gl.VertexAttribDivisor(location, divisor)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (va *VertexArray) Bind()               { gl.BindVertexArray(va.id) }
func (va *VertexArray) NumElements() int    { return va.numElements }
func (va *VertexArray) NumInstances() int   { return va.numInstances }
func (va *VertexArray) IndexType() gfx.Enum { return va.indexType }
func (va *VertexArray) Indexed() bool       { return va.indexed }
func (va *VertexArray) Instanced() bool     { return va.instanced }

func (va *VertexArray) Delete() {
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
}
