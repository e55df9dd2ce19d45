package gfx_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/stretchr/testify/assert"
)

func TestLoggerSilentByDefault(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, gfx.Logger().Enabled(context.Background(), level), level.String())
	}
}

func TestSetLoggerReportsRejectedBindings(t *testing.T) {
	var buf bytes.Buffer
	gfx.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { gfx.SetLogger(nil) })

	f := newFixture()
	f.drawCall().Uniform("uTime", 1).Texture("uMissing", nil)

	out := buf.String()
	assert.Contains(t, out, "uniform slot assigned")
	assert.Contains(t, out, "draw call binding rejected")
	assert.Contains(t, out, "uMissing")
}
