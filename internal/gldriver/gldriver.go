// Package gldriver implements shader.Driver on top of OpenGL ES 2 through
// go-gl. A GL context must be current on the calling thread for every method.
package gldriver

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/matjam/shadercache/internal/shader"
)

// Driver keeps the extension list of the context it was created on; all
// other state lives in the context.
type Driver struct {
	extensions map[string]bool
}

// New loads the GL entry points for the current context through
// procAddr, or through the platform loader when procAddr is nil.
func New(procAddr func(name string) unsafe.Pointer) (*Driver, error) {
	var err error
	if procAddr != nil {
		err = gl.InitWithProcAddrFunc(procAddr)
	} else {
		err = gl.Init()
	}
	if err != nil {
		return nil, fmt.Errorf("opengl es init failed: %w", err)
	}
	return &Driver{
		extensions: parseExtensions(gl.GoStr(gl.GetString(gl.EXTENSIONS))),
	}, nil
}

func parseExtensions(list string) map[string]bool {
	exts := make(map[string]bool)
	for _, name := range strings.Fields(list) {
		exts[name] = true
	}
	return exts
}

// requiredExtensions lists the extensions sources declare with
// "#extension NAME : require". Preprocessor conditionals are not evaluated.
func requiredExtensions(sources []string) []string {
	var required []string
	for _, src := range sources {
		scanner := bufio.NewScanner(strings.NewReader(src))
		for scanner.Scan() {
			fields := strings.Fields(strings.ReplaceAll(scanner.Text(), ":", " : "))
			if len(fields) == 4 && fields[0] == "#extension" && fields[2] == ":" && fields[3] == "require" {
				required = append(required, fields[1])
			}
		}
	}
	return required
}

func (d *Driver) missingExtensions(sources []string) []string {
	var missing []string
	for _, name := range requiredExtensions(sources) {
		if !d.extensions[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// compileLog appends the required extensions the context lacks, which is
// usually why a compile that requires one failed.
func (d *Driver) compileLog(info string, sources []string) string {
	info = trimLog(info)
	if missing := d.missingExtensions(sources); len(missing) > 0 {
		info += "\nnot supported by this context: " + strings.Join(missing, ", ")
	}
	return info
}

func glStage(stage shader.Stage) (uint32, error) {
	switch stage {
	case shader.StageVertex:
		return gl.VERTEX_SHADER, nil
	case shader.StageFragment:
		return gl.FRAGMENT_SHADER, nil
	}
	return 0, fmt.Errorf("cannot compile %s stage", stage)
}

func (d *Driver) CompileShader(stage shader.Stage, sources []string) (uint32, error) {
	shaderType, err := glStage(stage)
	if err != nil {
		return 0, err
	}
	if len(sources) == 0 {
		return 0, errors.New("no shader sources")
	}

	id := gl.CreateShader(shaderType)
	if id == 0 {
		return 0, errors.New("glCreateShader failed")
	}

	terminated := make([]string, len(sources))
	for i, src := range sources {
		terminated[i] = src + "\x00"
	}
	csources, free := gl.Strs(terminated...)
	gl.ShaderSource(id, int32(len(sources)), csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		info := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(info))
		gl.DeleteShader(id)
		return 0, errors.New(d.compileLog(info, sources))
	}
	return id, nil
}

func (d *Driver) LinkProgram(vertex, fragment uint32, attributes []string) (uint32, error) {
	program := gl.CreateProgram()
	if program == 0 {
		return 0, errors.New("glCreateProgram failed")
	}
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	for i, name := range attributes {
		gl.BindAttribLocation(program, uint32(i), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		info := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(info))
		gl.DeleteProgram(program)
		return 0, errors.New(trimLog(info))
	}
	return program, nil
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (d *Driver) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

// UseProgram binds id for subsequent draws.
func (d *Driver) UseProgram(id uint32) {
	gl.UseProgram(id)
}

// Renderer returns the GL_RENDERER and GL_VERSION strings.
func (d *Driver) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER)) + " (" + gl.GoStr(gl.GetString(gl.VERSION)) + ")"
}

func trimLog(info string) string {
	info = strings.TrimRight(info, "\x00")
	info = strings.TrimSpace(info)
	if info == "" {
		return "no info log"
	}
	return info
}
