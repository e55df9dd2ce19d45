package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grovegl/engine/assets"
	"github.com/hubastard/grovegl/engine/core"
	"github.com/hubastard/grovegl/engine/gfx"
	glbackend "github.com/hubastard/grovegl/engine/gfx/gl"
	"github.com/hubastard/grovegl/engine/scene"
)

const gridSize = 8

// App draws a grid of spinning, textured quads with one instanced draw call.
// A transform feedback pass moves every quad along a small orbit first and
// the quads read their offsets from the captured buffer.
type App struct {
	program *glbackend.Program
	quad    *glbackend.VertexArray
	buffers []interface{ Delete() }
	frame   *glbackend.UniformBuffer
	checker *gfx.Texture
	sprite  *gfx.Texture
	dc      *gfx.DrawCall
	camera  *scene.OrthoCamera2D

	orbitProgram  *glbackend.Program
	orbitVertices *glbackend.VertexArray
	orbitCapture  *glbackend.TransformFeedback
	orbit         *gfx.DrawCall

	t       float32
	paused  bool
	variant int
}

func (a *App) OnStart(e *core.Engine) error {
	ctx := e.Renderer.Context()

	var err error
	a.program, err = loadProgram("quad.vert", "quad.frag")
	if err != nil {
		return err
	}
	a.orbitProgram, err = loadProgram("orbit.vert", "capture.frag", "vOffset")
	if err != nil {
		return err
	}

	if err := a.buildQuad(); err != nil {
		return err
	}
	a.frame = glbackend.NewUniformBuffer(make([]float32, 4))

	a.checker, err = gfx.NewTexture(ctx, gfx.Texture2D, checkerPixels(64, 8), gfx.TextureOptions{
		Buffer:    true,
		Width:     64,
		Height:    64,
		MinFilter: gfx.Nearest,
		MagFilter: gfx.Nearest,
	})
	if err != nil {
		return err
	}

	img, err := assets.LoadImage("player.png")
	if err != nil {
		log.Printf("sandbox: %v, using generated sprite", err)
		img = spriteImage(32, 0)
	}
	// re-uploaded on F, and Image does not rebuild mip levels
	a.sprite, err = gfx.NewTexture(ctx, gfx.Texture2D, img, gfx.TextureOptions{
		MinFilter: gfx.Linear,
		WrapS:     gfx.ClampToEdge,
		WrapT:     gfx.ClampToEdge,
	})
	if err != nil {
		return err
	}

	w, h := e.Window.FramebufferSize()
	a.camera = scene.NewOrtho2D(gridSize+1, w, h)
	a.dc = gfx.NewDrawCall(ctx, a.program, a.quad, e.Config.DrawCallOptions()...).
		Uniform("uVP", a.camera.VP()).
		Uniform("uTint", mgl32.Vec4{1, 1, 1, 1}).
		UniformBlock("Frame", a.frame).
		Texture("uChecker", a.checker).
		Texture("uSprite", a.sprite)
	if err := a.dc.Err(); err != nil {
		return err
	}

	opts := append([]gfx.DrawCallOption{gfx.WithPrimitive(gfx.Points)}, e.Config.DrawCallOptions()...)
	a.orbit = gfx.NewDrawCall(ctx, a.orbitProgram, a.orbitVertices, opts...).
		TransformFeedback(a.orbitCapture).
		Uniform("uTime", float32(0))
	return a.orbit.Err()
}

func loadProgram(vsName, fsName string, varyings ...string) (*glbackend.Program, error) {
	vs, err := assets.LoadShader(vsName)
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader(fsName)
	if err != nil {
		return nil, err
	}
	p, err := glbackend.NewProgram(vs, fs, varyings...)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vsName, fsName, err)
	}
	return p, nil
}

func (a *App) buildQuad() error {
	positions, err := glbackend.NewVertexBuffer(2, []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	})
	if err != nil {
		return err
	}
	indices, err := glbackend.NewIndexBuffer([]uint16{0, 1, 2, 0, 2, 3})
	if err != nil {
		return err
	}

	offsets := make([]float32, 0, gridSize*gridSize*2)
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			offsets = append(offsets, float32(x)-gridSize/2+0.5, float32(y)-gridSize/2+0.5)
		}
	}
	homes, err := glbackend.NewVertexBuffer(2, offsets)
	if err != nil {
		return err
	}
	// written by the orbit pass every frame
	instances, err := glbackend.NewVertexBuffer(2, offsets)
	if err != nil {
		return err
	}

	a.quad = glbackend.NewVertexArray().
		VertexAttributeBuffer(0, positions).
		InstanceAttributeBuffer(1, instances).
		IndexBuffer(indices)
	a.orbitVertices = glbackend.NewVertexArray().VertexAttributeBuffer(0, homes)
	a.orbitCapture = glbackend.NewTransformFeedback().FeedbackBuffer(0, instances)
	a.buffers = append(a.buffers, positions, indices, homes, instances)
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
	if e.Input.WasPressed(core.KeySpace) {
		a.paused = !a.paused
	}
	if e.Input.WasPressed(core.KeyF) {
		a.variant++
		a.sprite.Image(spriteImage(32, a.variant), 0, 0, 0)
		if err := a.sprite.Err(); err != nil {
			log.Printf("sandbox: %v", err)
		}
	}
	if !a.paused {
		a.t += float32(dt)
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.frame.Set(0, []float32{a.t, 0.8, 0, 0})

	pulse := 0.75 + 0.25*float32(math.Sin(float64(a.t)))
	a.dc.Uniform("uTint", mgl32.Vec4{pulse, pulse, 1, 1})

	a.orbit.Uniform("uTime", a.t)
	if err := a.orbit.Draw(); err != nil {
		log.Printf("sandbox: orbit: %v", err)
		e.Window.RequestClose()
		return
	}

	// unit 0 is skipped by the draw call while the workaround is on, and the
	// program never assigns a sampler there, so nothing is lost.
	if err := a.dc.Draw(); err != nil {
		log.Printf("sandbox: draw: %v", err)
		e.Window.RequestClose()
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventResize:
		if ev.W > 0 && ev.H > 0 {
			a.camera.SetViewportPixels(ev.W, ev.H)
			a.dc.Uniform("uVP", a.camera.VP())
			e.Window.SetTitle(fmt.Sprintf("%s %dx%d", e.Config.Title, ev.W, ev.H))
		}
	case core.EventScroll:
		a.camera.SetZoom(a.camera.Zoom * float32(math.Pow(1.1, ev.Yoff)))
		a.dc.Uniform("uVP", a.camera.VP())
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.checker.Delete()
	a.sprite.Delete()
	a.frame.Delete()
	for _, b := range a.buffers {
		b.Delete()
	}
	a.quad.Delete()
	a.program.Delete()
	a.orbitCapture.Delete()
	a.orbitVertices.Delete()
	a.orbitProgram.Delete()
}

// checkerPixels returns size*size RGBA8 pixels in cell-sized squares.
func checkerPixels(size, cell int) []byte {
	pix := make([]byte, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(60)
			if (x/cell+y/cell)%2 == 0 {
				v = 180
			}
			pix = append(pix, v, v, v, 255)
		}
	}
	return pix
}

// spriteImage draws a filled circle whose colour changes with variant.
func spriteImage(size, variant int) image.Image {
	palette := []color.NRGBA{
		{R: 240, G: 180, B: 60, A: 255},
		{R: 90, G: 200, B: 120, A: 255},
		{R: 200, G: 90, B: 200, A: 255},
	}
	c := palette[variant%len(palette)]
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= (r-2)*(r-2) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}
