// Package shadertest provides an in-memory shader.Driver for tests.
package shadertest

import (
	"errors"
	"fmt"

	"github.com/matjam/shadercache/internal/shader"
)

// Driver records every call and hands out sequential handles. Set one of the
// Fail fields to make the matching step fail with that text as its log.
type Driver struct {
	FailVertex   string
	FailFragment string
	FailLink     string

	Compiles       int
	Links          int
	ShaderDeletes  int
	ProgramDeletes int
	Bound          []uint32

	// Sources holds the sources of the last successful compile per stage.
	Sources map[shader.Stage][]string

	next     uint32
	shaders  map[uint32]bool
	programs map[uint32]bool
}

// NewDriver returns a driver where every call succeeds.
func NewDriver() *Driver {
	return &Driver{
		Sources:  make(map[shader.Stage][]string),
		shaders:  make(map[uint32]bool),
		programs: make(map[uint32]bool),
	}
}

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CompileShader(stage shader.Stage, sources []string) (uint32, error) {
	d.Compiles++
	switch {
	case stage == shader.StageVertex && d.FailVertex != "":
		return 0, errors.New(d.FailVertex)
	case stage == shader.StageFragment && d.FailFragment != "":
		return 0, errors.New(d.FailFragment)
	}
	id := d.handle()
	d.shaders[id] = true
	d.Sources[stage] = sources
	return id, nil
}

func (d *Driver) LinkProgram(vertex, fragment uint32, _ []string) (uint32, error) {
	d.Links++
	if !d.shaders[vertex] || !d.shaders[fragment] {
		return 0, fmt.Errorf("link of unknown shaders %d, %d", vertex, fragment)
	}
	if d.FailLink != "" {
		return 0, errors.New(d.FailLink)
	}
	id := d.handle()
	d.programs[id] = true
	return id, nil
}

// UniformLocation returns the length of name, so locations are stable and
// distinct enough to assert on.
func (d *Driver) UniformLocation(program uint32, name string) int32 {
	if !d.programs[program] {
		return -1
	}
	return int32(len(name))
}

func (d *Driver) DeleteShader(id uint32) {
	if !d.shaders[id] {
		panic(fmt.Sprintf("shadertest: delete of unknown shader %d", id))
	}
	delete(d.shaders, id)
	d.ShaderDeletes++
}

func (d *Driver) DeleteProgram(id uint32) {
	if !d.programs[id] {
		panic(fmt.Sprintf("shadertest: delete of unknown program %d", id))
	}
	delete(d.programs, id)
	d.ProgramDeletes++
}

// UseProgram records a bind.
func (d *Driver) UseProgram(id uint32) {
	d.Bound = append(d.Bound, id)
}

// Renderer names the fake device.
func (d *Driver) Renderer() string {
	return "shadertest"
}

// LiveShaders is the number of shader objects not yet deleted.
func (d *Driver) LiveShaders() int {
	return len(d.shaders)
}

// LivePrograms is the number of program objects not yet deleted.
func (d *Driver) LivePrograms() int {
	return len(d.programs)
}
