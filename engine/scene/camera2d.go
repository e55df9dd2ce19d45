// Package scene holds view helpers shared by apps built on the engine.
package scene

import "github.com/go-gl/mathgl/mgl32"

// OrthoCamera2D is an orthographic camera with position, rotation and zoom.
// The view spans Height world units vertically; the width follows the
// viewport aspect ratio.
type OrthoCamera2D struct {
	Height      float32
	Aspect      float32
	Pos         mgl32.Vec2
	RotationRad float32
	Zoom        float32 // 1 = no zoom

	vp    mgl32.Mat4
	dirty bool
}

// NewOrtho2D returns a camera spanning viewHeight world units on a w by h
// pixel viewport.
func NewOrtho2D(viewHeight float32, w, h int) *OrthoCamera2D {
	c := &OrthoCamera2D{Height: viewHeight, Aspect: 1, Zoom: 1}
	c.SetViewportPixels(w, h)
	c.Recalculate()
	return c
}

// SetViewportPixels updates the aspect ratio. Degenerate sizes such as a
// minimized window are ignored.
func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.Aspect = float32(w) / float32(h)
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.Pos = c.Pos.Add(mgl32.Vec2{dx, dy}); c.dirty = true }
func (c *OrthoCamera2D) Rotate(dRad float32) { c.RotationRad += dRad; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *OrthoCamera2D) VP() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	halfH := c.Height / 2 / c.Zoom
	halfW := halfH * c.Aspect
	proj := mgl32.Ortho2D(-halfW, halfW, -halfH, halfH)

	// view = R(-rot) * T(-pos)
	view := mgl32.HomogRotate3DZ(-c.RotationRad).Mul4(mgl32.Translate3D(-c.Pos.X(), -c.Pos.Y(), 0))

	c.vp = proj.Mul4(view)
	c.dirty = false
}
