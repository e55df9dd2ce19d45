package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grovegl/engine/core"
)

// contextHints request a 3.3 core context, the oldest version with
// transform feedback objects, instanced draws and uniform buffers.
// Forward compatibility is required on macOS.
var contextHints = []struct {
	hint  glfw.Hint
	value int
}{
	{glfw.ContextVersionMajor, 3},
	{glfw.ContextVersionMinor, 3},
	{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
	{glfw.OpenGLForwardCompatible, glfw.True},
	{glfw.Samples, 0},
}

var keyMap = map[glfw.Key]core.Key{
	glfw.KeyEscape: core.KeyEscape,
	glfw.KeySpace:  core.KeySpace,
	glfw.KeyF:      core.KeyF,
}

var modMap = []struct {
	glfw glfw.ModifierKey
	core core.Mod
}{
	{glfw.ModShift, core.ModShift},
	{glfw.ModControl, core.ModCtrl},
	{glfw.ModAlt, core.ModAlt},
	{glfw.ModSuper, core.ModSuper},
}

// GLFWWindow is a core.Window backed by GLFW with a current GL context.
// Input and resize callbacks are forwarded as core events.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewGLFWWindow opens a window and makes its context current on the calling
// thread, which must stay the main thread for every later GL call.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	for _, h := range contextHints {
		glfw.WindowHint(h.hint, h.value)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create %dx%d window: %w", cfg.Width, cfg.Height, err)
	}
	win.MakeContextCurrent()
	interval := 0
	if cfg.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("load GL functions: %w", err)
	}
	log.Printf("GL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gw := &GLFWWindow{w: win, onEv: onEvent}
	gw.forwardEvents()
	return gw, nil
}

func (g *GLFWWindow) forwardEvents() {
	g.w.SetCloseCallback(func(*glfw.Window) {
		g.emit(core.EventCloseRequested{})
	})
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(core.EventResize{W: w, H: h})
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		g.emit(core.EventMouseMove{X: x, Y: y})
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		g.emit(core.EventScroll{Xoff: dx, Yoff: dy})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k, ok := keyMap[key]
		if !ok || action == glfw.Repeat {
			return
		}
		g.emit(core.EventKey{Key: k, Down: action == glfw.Press, Mods: toMods(mods)})
	})
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy releases the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func toMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, e := range modMap {
		if m&e.glfw != 0 {
			out |= e.core
		}
	}
	return out
}
