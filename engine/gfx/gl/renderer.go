package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegl/engine/core"
	"github.com/hubastard/grovegl/engine/gfx"
)

// RendererGL implements core.Renderer on an OpenGL 3.3 core context.
type RendererGL struct {
	win core.Window
	ctx *Context
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	r.ctx = NewContext()
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// Context returns the gfx context draw calls and textures are built on.
func (r *RendererGL) Context() gfx.Context { return r.ctx }

func (r *RendererGL) Shutdown() {}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
