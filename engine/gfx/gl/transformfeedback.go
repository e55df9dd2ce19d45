package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegl/engine/gfx"
)

// TransformFeedback captures vertex shader outputs into vertex buffers. It
// implements gfx.FeedbackTarget.
//
// Bind re-attaches every capture buffer, since a draw call clears the
// capture bases after each pass while the object is still bound.
type TransformFeedback struct {
	id      uint32
	bases   []int
	buffers []uint32 // parallel to bases
}

var _ gfx.FeedbackTarget = (*TransformFeedback)(nil)

func NewTransformFeedback() *TransformFeedback {
	tf := &TransformFeedback{}
	gl.GenTransformFeedbacks(1, &tf.id)
	return tf
}

// FeedbackBuffer captures the varying at index into buf.
func (tf *TransformFeedback) FeedbackBuffer(index int, buf *VertexBuffer) *TransformFeedback {
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, tf.id)
	gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, uint32(index), buf.id)
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, 0)

	for i, b := range tf.bases {
		if b == index {
			tf.buffers[i] = buf.id
			return tf
		}
	}
	tf.bases = append(tf.bases, index)
	tf.buffers = append(tf.buffers, buf.id)
	return tf
}

func (tf *TransformFeedback) Bind() {
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, tf.id)
	for i, base := range tf.bases {
		gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, uint32(base), tf.buffers[i])
	}
}

func (tf *TransformFeedback) CaptureBases() []int { return tf.bases }

func (tf *TransformFeedback) Delete() {
	if tf.id != 0 {
		gl.DeleteTransformFeedbacks(1, &tf.id)
		tf.id = 0
	}
}
