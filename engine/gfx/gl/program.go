package glbackend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegl/engine/gfx"
	"github.com/hubastard/grovegl/engine/gfx/gl/glutil"
)

// FirstSamplerUnit is the unit given to a program's first sampler. Unit 0
// stays free for texture uploads, which always go through it.
const FirstSamplerUnit = 1

type uniformInfo struct {
	location int32
	layout   glutil.Layout
}

// Program is a linked GLSL program with its active uniforms, samplers and
// uniform blocks resolved. It implements gfx.Program.
type Program struct {
	id       uint32
	uniforms map[string]uniformInfo
	samplers map[string]int
	blocks   map[string]uint32
}

var _ gfx.Program = (*Program)(nil)

// NewProgram compiles and links a program. Varyings, if given, are
// captured one per buffer: varying i lands in the buffer bound at
// TransformFeedback base i.
func NewProgram(vsSrc, fsSrc string, varyings ...string) (*Program, error) {
	id, err := makeProgram(vsSrc, fsSrc, varyings)
	if err != nil {
		return nil, err
	}
	p := &Program{
		id:       id,
		uniforms: make(map[string]uniformInfo),
		samplers: make(map[string]int),
		blocks:   make(map[string]uint32),
	}
	p.reflect()
	return p, nil
}

// reflect records every active uniform and assigns sampler units in
// declaration order.
func (p *Program) reflect() {
	var count, maxLen int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)

	gl.UseProgram(p.id)
	unit := FirstSamplerUnit
	buf := make([]uint8, maxLen+1)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var typ uint32
		gl.GetActiveUniform(p.id, i, int32(len(buf)), &length, &size, &typ, &buf[0])
		name := string(buf[:length])

		loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		if loc < 0 {
			// member of a uniform block
			continue
		}
		layout := glutil.UniformLayout(typ)
		p.uniforms[name] = uniformInfo{location: loc, layout: layout}
		if layout.Kind == glutil.KindSampler {
			p.samplers[name] = unit
			gl.Uniform1i(loc, int32(unit))
			unit++
		}
	}
	gl.UseProgram(0)

	gfx.Logger().Debug("glbackend: program linked",
		slog.Uint64("id", uint64(p.id)),
		slog.Int("uniforms", len(p.uniforms)),
		slog.Int("samplers", len(p.samplers)))
}

func (p *Program) Bind() { gl.UseProgram(p.id) }

// Uniform uploads value to the named uniform. The program must be bound.
// Names the linker optimized away are ignored.
func (p *Program) Uniform(name string, value any) {
	u, ok := p.uniforms[name]
	if !ok {
		return
	}
	vals, err := glutil.Flatten(value)
	if err != nil {
		gfx.Logger().Warn("glbackend: uniform not set", slog.String("name", name), slog.Any("error", err))
		return
	}
	n := int32(glutil.Count(u.layout, vals))
	if n == 0 {
		gfx.Logger().Warn("glbackend: uniform value too short", slog.String("name", name), slog.Int("components", vals.Len()))
		return
	}

	l := u.layout
	switch {
	case l.Kind == glutil.KindFloat && l.Columns > 0:
		f := vals.Floats()
		switch l.Columns {
		case 2:
			gl.UniformMatrix2fv(u.location, n, false, &f[0])
		case 3:
			gl.UniformMatrix3fv(u.location, n, false, &f[0])
		case 4:
			gl.UniformMatrix4fv(u.location, n, false, &f[0])
		}
	case l.Kind == glutil.KindFloat:
		f := vals.Floats()
		switch l.Components {
		case 1:
			gl.Uniform1fv(u.location, n, &f[0])
		case 2:
			gl.Uniform2fv(u.location, n, &f[0])
		case 3:
			gl.Uniform3fv(u.location, n, &f[0])
		case 4:
			gl.Uniform4fv(u.location, n, &f[0])
		}
	case l.Kind == glutil.KindUint:
		v := vals.Uints()
		switch l.Components {
		case 1:
			gl.Uniform1uiv(u.location, n, &v[0])
		case 2:
			gl.Uniform2uiv(u.location, n, &v[0])
		case 3:
			gl.Uniform3uiv(u.location, n, &v[0])
		case 4:
			gl.Uniform4uiv(u.location, n, &v[0])
		}
	default: // int, bool, sampler
		v := vals.Ints()
		switch l.Components {
		case 1:
			gl.Uniform1iv(u.location, n, &v[0])
		case 2:
			gl.Uniform2iv(u.location, n, &v[0])
		case 3:
			gl.Uniform3iv(u.location, n, &v[0])
		case 4:
			gl.Uniform4iv(u.location, n, &v[0])
		}
	}
}

// UniformBlock points the named uniform block at a buffer base.
func (p *Program) UniformBlock(name string, base int) {
	idx, ok := p.blocks[name]
	if !ok {
		idx = gl.GetUniformBlockIndex(p.id, gl.Str(name+"\x00"))
		p.blocks[name] = idx
	}
	if idx == gl.INVALID_INDEX {
		return
	}
	gl.UniformBlockBinding(p.id, idx, uint32(base))
}

func (p *Program) SamplerUnit(name string) (int, bool) {
	unit, ok := p.samplers[name]
	return unit, ok
}

func (p *Program) SamplerCount() int { return len(p.samplers) }

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string, varyings []string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)

	if len(varyings) > 0 {
		cstrs := make([]string, len(varyings))
		for i, v := range varyings {
			cstrs[i] = v + "\x00"
		}
		cvaryings, free := gl.Strs(cstrs...)
		gl.TransformFeedbackVaryings(prog, int32(len(varyings)), cvaryings, gl.SEPARATE_ATTRIBS)
		free()
	}

	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
