package glutil

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA returns img as tightly packed RGBA8 rows with a zero origin.
// With flipY the rows are reversed so the first row uploaded is the bottom
// of the image, matching GL's bottom-left origin.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	m, ok := img.(*image.RGBA)
	if !ok || m.Stride != b.Dx()*4 || b.Min != (image.Point{}) || flipY {
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		m = dst
	}
	if flipY {
		FlipRows(m.Pix, m.Stride)
	}
	return m
}

// FlipRows reverses the order of stride-sized rows in pix in place.
func FlipRows(pix []byte, stride int) {
	if stride <= 0 {
		return
	}
	rows := len(pix) / stride
	tmp := make([]byte, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		z := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, z)
		copy(z, tmp)
	}
}
