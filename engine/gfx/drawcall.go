package gfx

import (
	"fmt"
	"log/slog"
)

// DrawCall bundles a program, a vertex source and the uniform, uniform
// block and texture bindings for one draw command. Bindings are set by name
// and replayed against the context on every Draw.
//
// Setters are chainable. A setter that cannot be satisfied records an
// error, leaves the tables untouched and makes Draw fail with that error.
type DrawCall struct {
	ctx      Context
	program  Program
	vertices VertexSource
	feedback FeedbackTarget

	primitive   Primitive
	workarounds Workarounds
	limits      Limits

	uniformIndex  map[string]int
	uniformNames  []string
	uniformValues []any
	uniformCount  int

	blockBase    map[string]int
	blockNames   []string
	blockBuffers []Buffer
	blockCount   int

	// indexed by sampler unit
	textures    []*Texture
	texOccupied []bool

	err error
}

// NewDrawCall creates a draw call for program and vertices. Table sizes are
// fixed here from the context limits (or WithLimits) and never change.
func NewDrawCall(ctx Context, program Program, vertices VertexSource, opts ...DrawCallOption) *DrawCall {
	o := defaultDrawCallOptions()
	for _, opt := range opts {
		opt(&o)
	}

	limits := ctx.Limits()
	if o.limits != nil {
		if o.limits.MaxUniforms > 0 {
			limits.MaxUniforms = o.limits.MaxUniforms
		}
		if o.limits.MaxUniformBuffers > 0 {
			limits.MaxUniformBuffers = o.limits.MaxUniformBuffers
		}
		if o.limits.MaxTextureUnits > 0 {
			limits.MaxTextureUnits = o.limits.MaxTextureUnits
		}
	}

	return &DrawCall{
		ctx:           ctx,
		program:       program,
		vertices:      vertices,
		primitive:     o.primitive,
		workarounds:   o.workarounds,
		limits:        limits,
		uniformNames:  make([]string, limits.MaxUniforms),
		uniformValues: make([]any, limits.MaxUniforms),
		blockNames:    make([]string, limits.MaxUniformBuffers),
		blockBuffers:  make([]Buffer, limits.MaxUniformBuffers),
		textures:      make([]*Texture, limits.MaxTextureUnits),
		texOccupied:   make([]bool, limits.MaxTextureUnits),
	}
}

// TransformFeedback captures the output of subsequent draws into target.
// Pass nil to draw normally again. The target's varyings are not checked
// against the program.
func (dc *DrawCall) TransformFeedback(target FeedbackTarget) *DrawCall {
	dc.feedback = target
	return dc
}

// Uniform sets a uniform value. The first call for a name assigns it the
// next free slot; later calls only replace the value.
//
// Array uniforms are set by the name of their first element ("uLights[0]")
// and a flat slice holding every component.
func (dc *DrawCall) Uniform(name string, value any) *DrawCall {
	idx, ok := dc.uniformIndex[name]
	if !ok {
		if dc.uniformCount >= len(dc.uniformNames) {
			dc.fail(fmt.Errorf("uniform %q: %w (max %d uniforms)", name, ErrCapacityExceeded, len(dc.uniformNames)))
			return dc
		}
		if dc.uniformIndex == nil {
			dc.uniformIndex = make(map[string]int)
		}
		idx = dc.uniformCount
		dc.uniformCount++
		dc.uniformIndex[name] = idx
		dc.uniformNames[idx] = name
		Logger().Debug("gfx: uniform slot assigned", slog.String("name", name), slog.Int("slot", idx))
	}
	dc.uniformValues[idx] = value
	return dc
}

// Texture binds tex to the sampler called name. The unit is the one the
// program assigned to that sampler. A nil texture is rejected.
func (dc *DrawCall) Texture(name string, tex *Texture) *DrawCall {
	if tex == nil {
		dc.fail(fmt.Errorf("sampler %q: nil texture: %w", name, ErrPrecondition))
		return dc
	}
	unit, ok := dc.program.SamplerUnit(name)
	if !ok {
		dc.fail(fmt.Errorf("sampler %q: %w", name, ErrUnknownSampler))
		return dc
	}
	if unit < 0 || unit >= len(dc.textures) {
		dc.fail(fmt.Errorf("sampler %q unit %d: %w (max %d texture units)", name, unit, ErrCapacityExceeded, len(dc.textures)))
		return dc
	}
	dc.textures[unit] = tex
	dc.texOccupied[unit] = true
	return dc
}

// UniformBlock binds buf to the uniform block called name. The first call
// for a name assigns it the next free buffer base.
func (dc *DrawCall) UniformBlock(name string, buf Buffer) *DrawCall {
	base, ok := dc.blockBase[name]
	if !ok {
		if dc.blockCount >= len(dc.blockNames) {
			dc.fail(fmt.Errorf("uniform block %q: %w (max %d uniform buffers)", name, ErrCapacityExceeded, len(dc.blockNames)))
			return dc
		}
		if dc.blockBase == nil {
			dc.blockBase = make(map[string]int)
		}
		base = dc.blockCount
		dc.blockCount++
		dc.blockBase[name] = base
		dc.blockNames[base] = name
		Logger().Debug("gfx: uniform block base assigned", slog.String("name", name), slog.Int("base", base))
	}
	dc.blockBuffers[base] = buf
	return dc
}

// Draw applies every binding and issues the draw command. It returns the
// first binding error, if any, without touching the context.
//
// The order is fixed: program, vertex source, uniforms, uniform blocks,
// textures, feedback begin, draw, feedback end.
func (dc *DrawCall) Draw() error {
	if dc.err != nil {
		return dc.err
	}

	dc.program.Bind()
	dc.vertices.Bind()

	for i := 0; i < dc.uniformCount; i++ {
		dc.program.Uniform(dc.uniformNames[i], dc.uniformValues[i])
	}

	for base := 0; base < dc.blockCount; base++ {
		dc.program.UniformBlock(dc.blockNames[base], base)
		dc.blockBuffers[base].BindBase(base)
	}

	first := 0
	if dc.workarounds.SkipTextureUnitZero {
		first = 1
	}
	for unit := first; unit < len(dc.textures); unit++ {
		if dc.texOccupied[unit] {
			dc.textures[unit].Bind(unit)
		}
	}

	if dc.feedback != nil {
		dc.feedback.Bind()
		dc.ctx.BeginTransformFeedback(dc.primitive)
	}

	dc.issue()

	if dc.feedback != nil {
		dc.ctx.EndTransformFeedback()
		if dc.workarounds.UnbindFeedbackBuffers {
			for _, index := range dc.feedback.CaptureBases() {
				dc.ctx.BindBufferBase(TransformFeedbackBuffer, index, 0)
			}
		}
	}
	return nil
}

func (dc *DrawCall) issue() {
	va := dc.vertices
	switch {
	case va.Instanced() && va.Indexed():
		dc.ctx.DrawElementsInstanced(dc.primitive, va.NumElements(), va.IndexType(), 0, va.NumInstances())
	case va.Instanced():
		dc.ctx.DrawArraysInstanced(dc.primitive, 0, va.NumElements(), va.NumInstances())
	case va.Indexed():
		dc.ctx.DrawElements(dc.primitive, va.NumElements(), va.IndexType(), 0)
	default:
		dc.ctx.DrawArrays(dc.primitive, 0, va.NumElements())
	}
}

func (dc *DrawCall) fail(err error) {
	Logger().Warn("gfx: draw call binding rejected", slog.Any("error", err))
	if dc.err == nil {
		dc.err = err
	}
}

// Err returns the first binding error recorded by a setter.
func (dc *DrawCall) Err() error { return dc.err }

// Primitive returns the draw topology.
func (dc *DrawCall) Primitive() Primitive { return dc.primitive }

// UniformSlot returns the slot assigned to a uniform name.
func (dc *DrawCall) UniformSlot(name string) (int, bool) {
	idx, ok := dc.uniformIndex[name]
	return idx, ok
}

// UniformBlockBase returns the buffer base assigned to a uniform block.
func (dc *DrawCall) UniformBlockBase(name string) (int, bool) {
	base, ok := dc.blockBase[name]
	return base, ok
}
