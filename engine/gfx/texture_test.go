package gfx_test

import (
	"image"
	"testing"

	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/hubastard/grovegl/engine/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextureDecodedImage(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))

	tex, err := gfx.NewTexture(rec, gfx.Texture2D, img, gfx.TextureOptions{})
	require.NoError(t, err)
	h := tex.Handle()
	assert.NotZero(t, h)

	assert.Equal(t, []gfxtest.Call{
		{Name: "CreateTexture"},
		{Name: "ActiveTexture", Args: []any{0}},
		{Name: "BindTexture", Args: []any{gfx.Texture2D, h}},
		{Name: "TexParameter", Args: []any{gfx.Texture2D, gfx.TextureMagFilter, gfx.Linear}},
		{Name: "TexParameter", Args: []any{gfx.Texture2D, gfx.TextureMinFilter, gfx.LinearMipmapNearest}},
		{Name: "TexParameter", Args: []any{gfx.Texture2D, gfx.TextureWrapS, gfx.Repeat}},
		{Name: "TexParameter", Args: []any{gfx.Texture2D, gfx.TextureWrapT, gfx.Repeat}},
		{Name: "TexImage2DImage", Args: []any{gfx.Texture2D, gfx.RGBA, gfx.RGBA, gfx.UnsignedByte, image.Image(img), true}},
		{Name: "GenerateMipmap", Args: []any{gfx.Texture2D}},
		{Name: "BindTexture", Args: []any{gfx.Texture2D, uint32(0)}},
	}, rec.Calls)
}

func TestNewTextureRawBuffer(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	pix := make([]float32, 4*4*4)

	tex, err := gfx.NewTexture(rec, gfx.Texture2D, pix, gfx.TextureOptions{
		Buffer:         true,
		Width:          4,
		Height:         4,
		InternalFormat: gfx.RGBA32F,
		Type:           gfx.Float,
		MinFilter:      gfx.Nearest,
		MagFilter:      gfx.Nearest,
		WrapS:          gfx.ClampToEdge,
		NoFlipY:        true,
	})
	require.NoError(t, err)
	assert.False(t, tex.Is3D())

	uploads := rec.Filter("TexImage2D")
	require.Len(t, uploads, 1)
	assert.Equal(t, []any{gfx.Texture2D, gfx.RGBA32F, gfx.RGBA, gfx.Float, 4, 4, pix}, uploads[0].Args)
	assert.Empty(t, rec.Filter("TexImage2DImage"))
	assert.Empty(t, rec.Filter("GenerateMipmap"))
	assert.Contains(t, rec.Calls, gfxtest.Call{Name: "TexParameter", Args: []any{gfx.Texture2D, gfx.TextureWrapS, gfx.ClampToEdge}})
}

func TestNewTextureMipmaps(t *testing.T) {
	tests := []struct {
		name string
		opts gfx.TextureOptions
		want bool
	}{
		{"default filter", gfx.TextureOptions{}, true},
		{"linear mipmap linear", gfx.TextureOptions{MinFilter: gfx.LinearMipmapLinear}, true},
		{"nearest mipmap nearest", gfx.TextureOptions{MinFilter: gfx.NearestMipmapNearest}, true},
		{"linear", gfx.TextureOptions{MinFilter: gfx.Linear}, false},
		{"disabled", gfx.TextureOptions{NoMipmaps: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gfxtest.NewRecorder(testLimits)
			_, err := gfx.NewTexture(rec, gfx.Texture2D, image.NewRGBA(image.Rect(0, 0, 1, 1)), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, len(rec.Filter("GenerateMipmap")) == 1)
		})
	}
}

func TestNewTexture3D(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	data := make([]byte, 2*2*3*4)

	tex, err := gfx.NewTexture(rec, gfx.Texture3D, data, gfx.TextureOptions{
		Width: 2, Height: 2, Depth: 3,
		WrapR: gfx.MirroredRepeat,
	})
	require.NoError(t, err)
	assert.True(t, tex.Is3D())

	assert.Contains(t, rec.Calls, gfxtest.Call{Name: "TexParameter", Args: []any{gfx.Texture3D, gfx.TextureWrapR, gfx.MirroredRepeat}})
	uploads := rec.Filter("TexImage3D")
	require.Len(t, uploads, 1)
	assert.Equal(t, []any{gfx.Texture3D, gfx.RGBA, gfx.RGBA, gfx.UnsignedByte, 2, 2, 3, data}, uploads[0].Args)
}

func TestNewTexturePreconditions(t *testing.T) {
	tests := []struct {
		name   string
		target gfx.TextureTarget
		data   any
		opts   gfx.TextureOptions
	}{
		{"3D without depth", gfx.Texture3D, []byte{}, gfx.TextureOptions{Width: 2, Height: 2}},
		{"array without depth", gfx.Texture2DArray, []byte{}, gfx.TextureOptions{Width: 2, Height: 2}},
		{"3D without width", gfx.Texture3D, []byte{}, gfx.TextureOptions{Height: 2, Depth: 2}},
		{"raw without height", gfx.Texture2D, []byte{}, gfx.TextureOptions{Buffer: true, Width: 2}},
		{"decoded without image", gfx.Texture2D, []byte{1, 2, 3, 4}, gfx.TextureOptions{}},
		{"decoded nil", gfx.Texture2D, nil, gfx.TextureOptions{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gfxtest.NewRecorder(testLimits)
			tex, err := gfx.NewTexture(rec, tt.target, tt.data, tt.opts)
			require.ErrorIs(t, err, gfx.ErrPrecondition)
			assert.Nil(t, tex)
			assert.Empty(t, rec.Calls)
		})
	}
}

func TestTextureImagePathSelection(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	tex, err := gfx.NewTexture(rec, gfx.Texture2D, img, gfx.TextureOptions{NoFlipY: true})
	require.NoError(t, err)
	h := tex.Handle()

	rec.Reset()
	pix := make([]byte, 16*16*4)
	tex.Image(pix, 16, 16, 0)
	require.NoError(t, tex.Err())
	assert.Equal(t, []gfxtest.Call{
		{Name: "ActiveTexture", Args: []any{0}},
		{Name: "BindTexture", Args: []any{gfx.Texture2D, h}},
		{Name: "TexImage2D", Args: []any{gfx.Texture2D, gfx.RGBA, gfx.RGBA, gfx.UnsignedByte, 16, 16, pix}},
		{Name: "BindTexture", Args: []any{gfx.Texture2D, uint32(0)}},
	}, rec.Calls)

	for _, dims := range [][2]int{{0, 0}, {16, 0}, {0, 16}} {
		rec.Reset()
		tex.Image(img, dims[0], dims[1], 0)
		require.NoError(t, tex.Err())
		assert.Empty(t, rec.Filter("TexImage2D"), "dims %v", dims)
		uploads := rec.Filter("TexImage2DImage")
		require.Len(t, uploads, 1, "dims %v", dims)
		assert.Equal(t, false, uploads[0].Args[5])
	}
}

func TestTextureImage3DNeedsDepth(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	tex, err := gfx.NewTexture(rec, gfx.Texture2DArray, nil, gfx.TextureOptions{Width: 4, Height: 4, Depth: 2})
	require.NoError(t, err)

	rec.Reset()
	got := tex.Image(make([]byte, 64), 4, 4, 0)
	assert.Same(t, tex, got)
	require.ErrorIs(t, tex.Err(), gfx.ErrPrecondition)
	assert.Empty(t, rec.Calls)

	// 3D ignores a decoded image even without dimensions
	tex.Image(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, 0, 0)
	assert.Empty(t, rec.Calls)

	tex.Image(make([]byte, 4*4*3*4), 4, 4, 3)
	assert.Len(t, rec.Filter("TexImage3D"), 1)
}

func TestTextureImageRejectsRawWithoutDimensions(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	tex, err := gfx.NewTexture(rec, gfx.Texture2D, nil, gfx.TextureOptions{Buffer: true, Width: 1, Height: 1})
	require.NoError(t, err)

	rec.Reset()
	tex.Image([]byte{0, 0, 0, 0}, 1, 0, 0)
	require.ErrorIs(t, tex.Err(), gfx.ErrPrecondition)
	assert.Empty(t, rec.Calls)
}

func TestTextureBindAndDelete(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	tex, err := gfx.NewTexture(rec, gfx.TextureCubeMap, image.NewRGBA(image.Rect(0, 0, 1, 1)), gfx.TextureOptions{})
	require.NoError(t, err)
	h := tex.Handle()

	rec.Reset()
	assert.Same(t, tex, tex.Bind(5))
	assert.Equal(t, []gfxtest.Call{
		{Name: "ActiveTexture", Args: []any{5}},
		{Name: "BindTexture", Args: []any{gfx.TextureCubeMap, h}},
	}, rec.Calls)

	rec.Reset()
	tex.Delete()
	tex.Delete()
	assert.Equal(t, []gfxtest.Call{{Name: "DeleteTexture", Args: []any{h}}}, rec.Calls)
	assert.Zero(t, tex.Handle())
}

func TestTextureImageKeepsMipmaps(t *testing.T) {
	rec := gfxtest.NewRecorder(testLimits)
	tex, err := gfx.NewTexture(rec, gfx.Texture2D, image.NewRGBA(image.Rect(0, 0, 4, 4)), gfx.TextureOptions{})
	require.NoError(t, err)
	require.Len(t, rec.Filter("GenerateMipmap"), 1)

	rec.Reset()
	tex.Image(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, 0, 0)
	require.NoError(t, tex.Err())
	assert.Len(t, rec.Filter("TexImage2DImage"), 1)
	assert.Empty(t, rec.Filter("GenerateMipmap"))
}
