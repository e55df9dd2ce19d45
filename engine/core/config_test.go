package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/hubastard/grovegl/engine/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title: demo
width: 640
workarounds:
  skip_texture_unit_zero: false
limits:
  max_uniforms: 8
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.True(t, cfg.VSync)
	assert.False(t, cfg.Workarounds.SkipTextureUnitZero)
	assert.True(t, cfg.Workarounds.UnbindFeedbackBuffers)
	assert.Equal(t, gfx.Limits{MaxUniforms: 8}, cfg.Limits)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "width: [1, 2"))
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadConfig(writeConfig(t, "width: 0"))
	assert.ErrorContains(t, err, "window size")
}

func TestConfigDrawCallOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workarounds.SkipTextureUnitZero = false
	cfg.Limits.MaxUniforms = 1

	rec := gfxtest.NewRecorder(gfx.Limits{MaxUniforms: 16, MaxUniformBuffers: 4, MaxTextureUnits: 4})
	prog := &gfxtest.Program{Rec: rec, Samplers: map[string]int{"uTex": 0}}
	va := &gfxtest.VertexArray{Rec: rec, Elements: 3}
	tex, err := gfx.NewTexture(rec, gfx.Texture2D, nil, gfx.TextureOptions{Buffer: true, Width: 1, Height: 1})
	require.NoError(t, err)

	dc := gfx.NewDrawCall(rec, prog, va, cfg.DrawCallOptions()...)
	dc.Uniform("a", 1).Uniform("b", 2)
	require.ErrorIs(t, dc.Err(), gfx.ErrCapacityExceeded)

	dc = gfx.NewDrawCall(rec, prog, va, cfg.DrawCallOptions()...).Texture("uTex", tex)
	rec.Reset()
	require.NoError(t, dc.Draw())
	assert.Equal(t, []any{0}, rec.Filter("ActiveTexture")[0].Args)
}

func TestInputPressed(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeySpace, Down: true})
	in.Handle(EventKey{Key: KeySpace, Down: true}) // repeat
	assert.True(t, in.IsKeyDown(KeySpace))
	assert.True(t, in.WasPressed(KeySpace))
	assert.False(t, in.WasPressed(KeySpace))

	in.Handle(EventKey{Key: KeySpace, Down: false})
	assert.False(t, in.IsKeyDown(KeySpace))

	in.Handle(EventMouseMove{X: 3, Y: 4})
	x, y := in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}
