package shader

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

// Cache maps Requirements to linked programs. It is not safe for concurrent
// use: every method must run on the goroutine that owns the driver context,
// and that context must outlive the cache.
//
// Entries are never evicted; Close (or DestroyAll) releases all of them.
type Cache struct {
	driver   Driver
	clock    clockwork.Clock
	logger   *log.Logger
	verbose  bool
	programs map[Requirements]*Program
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for build failures and verbose output.
func WithLogger(l *log.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// WithClock sets the clock used for creation times and dump ages.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Cache) {
		c.clock = clock
	}
}

// WithVerbose logs every program creation and deletion.
func WithVerbose(verbose bool) Option {
	return func(c *Cache) {
		c.verbose = verbose
	}
}

// NewCache creates an empty cache that builds programs with driver.
func NewCache(driver Driver, opts ...Option) *Cache {
	c := &Cache{
		driver:   driver,
		clock:    clockwork.NewRealClock(),
		logger:   log.Default().WithPrefix("shader"),
		programs: make(map[Requirements]*Program),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	return len(c.programs)
}

// Lookup returns the cached program for req without building one.
func (c *Cache) Lookup(req Requirements) (*Program, bool) {
	p, ok := c.programs[req]
	return p, ok
}

// Get returns the program for req, compiling and linking it on first use.
// Failures are reported as *BuildError and leave the cache unchanged. A
// variant outside the declared set is rejected with ErrUnknownVariant.
func (c *Cache) Get(req Requirements) (*Program, error) {
	if !req.Variant.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, req.Variant)
	}
	if p, ok := c.programs[req]; ok {
		return p, nil
	}

	p, err := c.build(req)
	if err != nil {
		return nil, err
	}
	c.programs[req] = p
	return p, nil
}

func (c *Cache) build(req Requirements) (*Program, error) {
	if c.verbose {
		c.logger.Infof("Compiling shader program for: %s", Describe(req))
	}

	vertexSources := []string{vertexShaderSource}
	vs, err := c.driver.CompileShader(StageVertex, vertexSources)
	if err != nil {
		return nil, c.buildFailed(StageVertex, req, err, vertexSources)
	}
	// The program keeps attached stages alive; these only drop our reference.
	defer c.driver.DeleteShader(vs)

	fragmentSources := FragmentSources(req)
	fs, err := c.driver.CompileShader(StageFragment, fragmentSources)
	if err != nil {
		return nil, c.buildFailed(StageFragment, req, err, fragmentSources)
	}
	defer c.driver.DeleteShader(fs)

	id, err := c.driver.LinkProgram(vs, fs, attributeNames)
	if err != nil {
		return nil, c.buildFailed(StageLink, req, err, nil)
	}

	return &Program{
		Key:      req,
		ID:       id,
		Uniforms: resolveUniforms(c.driver, id),
		lastUsed: c.clock.Now(),
	}, nil
}

func (c *Cache) buildFailed(stage Stage, req Requirements, err error, sources []string) error {
	berr := &BuildError{Stage: stage, Req: req, Log: err.Error()}
	c.logger.Error("shader build failed", "stage", stage, "program", Describe(req), "info", berr.Log)
	if len(sources) > 0 {
		c.logger.Debugf("shader source:\n%s", NumberLines(sources...))
	}
	return berr
}

// DestroyAll deletes every cached program and empties the cache.
func (c *Cache) DestroyAll() {
	for req, p := range c.programs {
		c.destroy(p)
		delete(c.programs, req)
	}
}

// Close releases all programs. It never fails.
func (c *Cache) Close() error {
	c.DestroyAll()
	return nil
}

func (c *Cache) destroy(p *Program) {
	if p.ID == 0 {
		panic("shader: destroying program without a driver handle")
	}
	if c.verbose {
		c.logger.Infof("Deleting shader program for: %s", Describe(p.Key))
	}
	c.driver.DeleteProgram(p.ID)
	p.ID = 0
}
