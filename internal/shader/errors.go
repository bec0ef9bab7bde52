package shader

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrCompile is wrapped by a BuildError from the vertex or fragment stage.
	ErrCompile = zerr.New("shader compile failed")

	// ErrLink is wrapped by a BuildError from the link stage.
	ErrLink = zerr.New("shader program link failed")

	// ErrUnknownVariant is returned by Cache.Get for an undeclared Variant.
	ErrUnknownVariant = zerr.New("unknown shader variant")
)

// BuildError is returned by Cache.Get when a program could not be built.
// Nothing is cached for Req, so a later Get may try again.
type BuildError struct {
	Stage Stage
	Req   Requirements
	Log   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s stage for %s: %s", e.Unwrap(), e.Stage, Describe(e.Req), e.Log)
}

func (e *BuildError) Unwrap() error {
	if e.Stage == StageLink {
		return ErrLink
	}
	return ErrCompile
}
