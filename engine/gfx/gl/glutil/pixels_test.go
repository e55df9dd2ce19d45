package glutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRows(t *testing.T) {
	pix := []byte{1, 1, 2, 2, 3, 3}
	FlipRows(pix, 2)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pix)

	FlipRows(pix, 0)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pix)
}

func TestToRGBA(t *testing.T) {
	src := image.NewGray(image.Rect(2, 2, 4, 5))
	src.SetGray(2, 2, color.Gray{Y: 10})
	src.SetGray(3, 4, color.Gray{Y: 200})

	m := ToRGBA(src, false)
	require.Equal(t, image.Rect(0, 0, 2, 3), m.Bounds())
	assert.Equal(t, 8, m.Stride)
	assert.Equal(t, color.RGBA{10, 10, 10, 255}, m.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, m.RGBAAt(1, 2))

	flipped := ToRGBA(src, true)
	assert.Equal(t, color.RGBA{10, 10, 10, 255}, flipped.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, flipped.RGBAAt(1, 0))
}

func TestToRGBAReusesTightImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	assert.Same(t, src, ToRGBA(src, false))

	src.Pix[0] = 9
	flipped := ToRGBA(src, true)
	assert.NotSame(t, src, flipped)
	assert.Equal(t, uint8(9), src.Pix[0])
	assert.Equal(t, uint8(9), flipped.Pix[2*flipped.Stride])
}

func TestElementType(t *testing.T) {
	typ, size, err := ElementType([]uint16{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, gfx.UnsignedShort, typ)
	assert.Equal(t, 6, size)

	typ, size, err = ElementType([]float32{1})
	require.NoError(t, err)
	assert.Equal(t, gfx.Float, typ)
	assert.Equal(t, 4, size)

	_, _, err = ElementType([]string{"x"})
	assert.Error(t, err)

	assert.Equal(t, 2, TypeSize(gfx.HalfFloat))
	assert.Equal(t, 0, TypeSize(gfx.RGBA))
}
