package glutil

import (
	"fmt"

	"github.com/hubastard/grovegl/engine/gfx"
)

// ElementType returns the GL component type and total byte size of a
// typed slice destined for a buffer or texture upload.
func ElementType(data any) (typ gfx.Enum, size int, err error) {
	switch v := data.(type) {
	case []float32:
		return gfx.Float, 4 * len(v), nil
	case []int32:
		return gfx.Int, 4 * len(v), nil
	case []uint32:
		return gfx.UnsignedInt, 4 * len(v), nil
	case []int16:
		return gfx.Short, 2 * len(v), nil
	case []uint16:
		return gfx.UnsignedShort, 2 * len(v), nil
	case []int8:
		return gfx.Byte, len(v), nil
	case []uint8:
		return gfx.UnsignedByte, len(v), nil
	}
	return 0, 0, fmt.Errorf("unsupported buffer data type %T", data)
}

// TypeSize returns the byte size of one GL component type.
func TypeSize(typ gfx.Enum) int {
	switch typ {
	case gfx.Byte, gfx.UnsignedByte:
		return 1
	case gfx.Short, gfx.UnsignedShort, gfx.HalfFloat:
		return 2
	case gfx.Int, gfx.UnsignedInt, gfx.Float:
		return 4
	}
	return 0
}
