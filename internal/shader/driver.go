package shader

//go:generate mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks

// Stage identifies which step of building a program failed.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	}
	return "unknown"
}

// Driver is the slice of a GPU API the cache needs. All calls are made from
// the goroutine that owns the driver context.
//
// CompileShader and LinkProgram must release the object they created when
// they fail; the error text is the driver's info log. Handles are never 0
// on success.
type Driver interface {
	CompileShader(stage Stage, sources []string) (uint32, error)
	LinkProgram(vertex, fragment uint32, attributes []string) (uint32, error)
	UniformLocation(program uint32, name string) int32
	DeleteShader(id uint32)
	DeleteProgram(id uint32)
}
