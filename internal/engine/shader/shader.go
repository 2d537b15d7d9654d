// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError reports a failed compile or link, carrying the driver's info log.
type CompileError struct {
	Program string // program name, e.g. "scene"
	Stage   string // "vertex", "fragment" or "link"
	Log     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader %s: %s: %s", e.Program, e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// Program is a linked shader program with its resolved uniform locations.
type Program struct {
	ID   uint32
	Name string

	locations map[string]int32
}

// NewProgram wraps an existing program ID with a location table.
func NewProgram(name string, id uint32, locations map[string]int32) *Program {
	if locations == nil {
		locations = make(map[string]int32)
	}
	return &Program{ID: id, Name: name, locations: locations}
}

// Location returns the location of a uniform, or -1 if the program does not use it.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}

// Locations returns the number of uniforms resolved to an active location.
func (p *Program) Locations() int {
	n := 0
	for _, loc := range p.locations {
		if loc >= 0 {
			n++
		}
	}
	return n
}

// Compile compiles and links a program and resolves the given uniform names.
// Uniforms the linker optimized away resolve to -1.
func Compile(name, vertexSrc, fragmentSrc string, uniforms []string) (*Program, error) {
	id, err := CompileProgram(name, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	locs := make(map[string]int32, len(uniforms))
	for _, u := range uniforms {
		locs[u] = GetUniform(id, u)
	}
	return NewProgram(name, id, locs), nil
}

// Load reads vertex and fragment sources from disk and compiles them.
func Load(name, vertexPath, fragmentPath string, uniforms []string) (*Program, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("reading vertex shader %s: %w", vertexPath, err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("reading fragment shader %s: %w", fragmentPath, err)
	}
	return Compile(name, string(vertexSrc), string(fragmentSrc), uniforms)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(name, vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(name, vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(name, fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &CompileError{Program: name, Stage: "link", Log: string(log)}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(program, source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &CompileError{Program: program, Stage: stage, Log: string(log)}
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, -1 if inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
