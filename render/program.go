package render

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// MVPUniform is the name of the matrix uniform the vertex shader must declare
const MVPUniform = "MVP"

// Program is a linked shader program. A program that failed to compile is kept
// and drawn with anyway; nothing in the simulation depends on it.
type Program struct {
	shader    rl.Shader
	valid     bool
	locations map[string]int32
}

// CompileProgram compiles and links a program from vertex and fragment source text.
// Failures are logged, not returned.
func CompileProgram(vertexSource, fragmentSource string) *Program {
	shader := rl.LoadShaderFromMemory(vertexSource, fragmentSource)

	p := &Program{
		shader:    shader,
		locations: make(map[string]int32),
	}

	// raylib falls back to its default shader on failure; that one has no MVP uniform
	p.valid = rl.IsShaderValid(shader) && p.location(MVPUniform) >= 0
	if !p.valid {
		log.Printf("render: shader program failed to compile or link (no %q uniform)", MVPUniform)
	}

	return p
}

// Valid reports whether the program compiled, linked and exposes the MVP uniform
func (p *Program) Valid() bool {
	return p.valid
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(p.shader, name)
	p.locations[name] = loc
	return loc
}

// SetUniformMatrix uploads a 4x4 matrix. Unknown uniforms are ignored.
func (p *Program) SetUniformMatrix(name string, m mgl32.Mat4) {
	loc := p.location(name)
	if loc < 0 {
		return
	}
	rl.SetShaderValueMatrix(p.shader, loc, toMatrix(m))
}

// toMatrix keeps mathgl's column-major layout: element i of m becomes field Mi
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
