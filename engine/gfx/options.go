package gfx

// Workarounds toggles driver bug workarounds applied during Draw.
type Workarounds struct {
	// SkipTextureUnitZero leaves unit 0 alone when rebinding textures.
	// Rebinding unit 0 corrupts sampler state on affected drivers
	// (chromium issue 722288), so a texture assigned there must be bound by
	// the caller.
	SkipTextureUnitZero bool `yaml:"skip_texture_unit_zero"`

	// UnbindFeedbackBuffers clears every capture buffer base after a
	// transform feedback pass. ANGLE keeps stale bindings otherwise.
	UnbindFeedbackBuffers bool `yaml:"unbind_feedback_buffers"`
}

// DefaultWorkarounds enables every workaround.
func DefaultWorkarounds() Workarounds {
	return Workarounds{SkipTextureUnitZero: true, UnbindFeedbackBuffers: true}
}

// DrawCallOption configures a DrawCall at construction.
type DrawCallOption func(*drawCallOptions)

type drawCallOptions struct {
	primitive   Primitive
	workarounds Workarounds
	limits      *Limits
}

func defaultDrawCallOptions() drawCallOptions {
	return drawCallOptions{
		primitive:   Triangles,
		workarounds: DefaultWorkarounds(),
	}
}

// WithPrimitive sets the draw topology. The default is Triangles.
func WithPrimitive(p Primitive) DrawCallOption {
	return func(o *drawCallOptions) { o.primitive = p }
}

// WithWorkarounds replaces the default driver workarounds.
func WithWorkarounds(w Workarounds) DrawCallOption {
	return func(o *drawCallOptions) { o.workarounds = w }
}

// WithLimits sizes the binding tables from l instead of the context's
// reported limits. Zero fields fall back to the context value.
func WithLimits(l Limits) DrawCallOption {
	return func(o *drawCallOptions) { o.limits = &l }
}
