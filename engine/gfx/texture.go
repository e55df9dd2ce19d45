package gfx

import (
	"fmt"
	"image"
	"log/slog"
)

// TextureOptions configures a texture. Zero fields take the listed default.
type TextureOptions struct {
	Format         Enum // RGBA
	InternalFormat Enum // RGBA
	Type           Enum // UnsignedByte

	// Buffer selects the raw-data upload path for 2D textures. Width and
	// Height are then required. 3D and array textures always upload raw data
	// and need Width, Height and Depth.
	Buffer bool
	Width  int
	Height int
	Depth  int

	// NoFlipY disables flipping decoded images to a bottom-left origin.
	NoFlipY bool

	MinFilter Enum // LinearMipmapNearest
	MagFilter Enum // Linear
	WrapS     Enum // Repeat
	WrapT     Enum // Repeat
	WrapR     Enum // Repeat

	// NoMipmaps disables mipmap generation. Mipmaps are only generated when
	// MinFilter samples mip levels.
	NoMipmaps bool
}

func (o TextureOptions) withDefaults() TextureOptions {
	if o.Format == 0 {
		o.Format = RGBA
	}
	if o.InternalFormat == 0 {
		o.InternalFormat = RGBA
	}
	if o.Type == 0 {
		o.Type = UnsignedByte
	}
	if o.MinFilter == 0 {
		o.MinFilter = LinearMipmapNearest
	}
	if o.MagFilter == 0 {
		o.MagFilter = Linear
	}
	if o.WrapS == 0 {
		o.WrapS = Repeat
	}
	if o.WrapT == 0 {
		o.WrapT = Repeat
	}
	if o.WrapR == 0 {
		o.WrapR = Repeat
	}
	return o
}

// Texture owns one GPU image and its sampling parameters. Target and
// formats are fixed at construction; every upload re-specifies the whole
// image with them.
type Texture struct {
	ctx    Context
	handle uint32
	target TextureTarget

	format         Enum
	internalFormat Enum
	typ            Enum
	flipY          bool

	err error
}

// NewTexture creates a texture on target and uploads data.
//
// Preconditions, reported as ErrPrecondition before anything is allocated:
//   - 3D and array targets need Width, Height and Depth.
//   - 2D with Buffer set needs Width and Height; data is raw pixels or nil.
//   - 2D without Buffer needs data to be an image.Image.
func NewTexture(ctx Context, target TextureTarget, data any, opts TextureOptions) (*Texture, error) {
	o := opts.withDefaults()

	t := &Texture{
		ctx:            ctx,
		target:         target,
		format:         o.Format,
		internalFormat: o.InternalFormat,
		typ:            o.Type,
		flipY:          !o.NoFlipY,
	}

	raw := o.Buffer || target.Is3D()
	if err := t.check(data, raw, o.Width, o.Height, o.Depth); err != nil {
		return nil, err
	}

	t.handle = ctx.CreateTexture()
	ctx.ActiveTexture(0)
	ctx.BindTexture(target, t.handle)

	ctx.TexParameter(target, TextureMagFilter, o.MagFilter)
	ctx.TexParameter(target, TextureMinFilter, o.MinFilter)
	ctx.TexParameter(target, TextureWrapS, o.WrapS)
	ctx.TexParameter(target, TextureWrapT, o.WrapT)
	if target.Is3D() {
		ctx.TexParameter(target, TextureWrapR, o.WrapR)
	}

	t.upload(data, raw, o.Width, o.Height, o.Depth)

	if !o.NoMipmaps && IsMipmap(o.MinFilter) {
		ctx.GenerateMipmap(target)
	}

	ctx.BindTexture(target, 0)
	return t, nil
}

// Image replaces the texture contents. 3D and array textures always take
// raw data with all three dimensions. 2D textures take raw data when width
// and height are both set and a decoded image.Image otherwise.
//
// Only level 0 is replaced. Mipmaps built at construction keep the old
// contents, so textures that are re-uploaded should use a non-mipmap
// MinFilter.
func (t *Texture) Image(data any, width, height, depth int) *Texture {
	raw := t.target.Is3D() || (width > 0 && height > 0)
	if err := t.check(data, raw, width, height, depth); err != nil {
		Logger().Warn("gfx: texture upload rejected", slog.Any("error", err))
		if t.err == nil {
			t.err = err
		}
		return t
	}

	t.ctx.ActiveTexture(0)
	t.ctx.BindTexture(t.target, t.handle)
	t.upload(data, raw, width, height, depth)
	t.ctx.BindTexture(t.target, 0)
	return t
}

// Bind binds the texture to a texture unit. Binding a deleted texture is
// the caller's problem.
func (t *Texture) Bind(unit int) *Texture {
	t.ctx.ActiveTexture(unit)
	t.ctx.BindTexture(t.target, t.handle)
	return t
}

// Delete releases the GPU image.
func (t *Texture) Delete() {
	if t.handle == 0 {
		return
	}
	t.ctx.DeleteTexture(t.handle)
	t.handle = 0
}

func (t *Texture) Handle() uint32        { return t.handle }
func (t *Texture) Target() TextureTarget { return t.target }
func (t *Texture) Is3D() bool            { return t.target.Is3D() }

// Err returns the first rejected Image call.
func (t *Texture) Err() error { return t.err }

func (t *Texture) check(data any, raw bool, width, height, depth int) error {
	switch {
	case t.target.Is3D():
		if width <= 0 || height <= 0 || depth <= 0 {
			return fmt.Errorf("3D texture upload needs width, height and depth, got %dx%dx%d: %w", width, height, depth, ErrPrecondition)
		}
	case raw:
		if width <= 0 || height <= 0 {
			return fmt.Errorf("raw texture upload needs width and height, got %dx%d: %w", width, height, ErrPrecondition)
		}
	default:
		if img, ok := data.(image.Image); !ok || img == nil {
			return fmt.Errorf("texture upload without dimensions needs an image.Image, got %T: %w", data, ErrPrecondition)
		}
	}
	return nil
}

// upload assumes the texture is bound and the arguments passed check.
func (t *Texture) upload(data any, raw bool, width, height, depth int) {
	switch {
	case t.target.Is3D():
		t.ctx.TexImage3D(t.target, t.internalFormat, t.format, t.typ, width, height, depth, data)
	case raw:
		t.ctx.TexImage2D(t.target, t.internalFormat, t.format, t.typ, width, height, data)
	default:
		t.ctx.TexImage2DImage(t.target, t.internalFormat, t.format, t.typ, data.(image.Image), t.flipY)
	}
	Logger().Debug("gfx: texture uploaded",
		slog.Uint64("handle", uint64(t.handle)),
		slog.Bool("raw", raw),
		slog.Int("width", width), slog.Int("height", height), slog.Int("depth", depth))
}
