package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/grovegl/engine/assets"
	"github.com/hubastard/grovegl/engine/core"
	"github.com/hubastard/grovegl/engine/gfx"
	glbackend "github.com/hubastard/grovegl/engine/gfx/gl"
	"github.com/hubastard/grovegl/engine/platform"
	flag "github.com/spf13/pflag"
)

func main() {
	cfgPath := flag.StringP("config", "c", "sandbox.yaml", "YAML config file")
	verbose := flag.BoolP("verbose", "v", false, "log gfx diagnostics")
	flag.StringVarP(&assets.Dir, "assets", "a", assets.Dir, "asset root holding shaders/ and textures/")
	flag.Parse()

	cfg, err := core.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Title == core.DefaultConfig().Title {
		cfg.Title = "grove sandbox (instanced draw call)"
	}
	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		win = w
		return w, err
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	err = core.Run(&App{}, cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}
