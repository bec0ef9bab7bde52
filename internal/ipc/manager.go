package ipc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/shadercache/internal/shader"
)

// ErrManagerStopped is returned by Do once the render thread has exited.
var ErrManagerStopped = errors.New("shader manager is not running")

// Backend is a shader driver plus what the render thread needs to bind
// programs and report the device.
type Backend interface {
	shader.Driver
	UseProgram(id uint32)
	Renderer() string
}

// BackendFactory opens a backend on the calling (locked) thread. The
// returned release func is called on the same thread after the cache is
// destroyed.
type BackendFactory func() (Backend, func(), error)

// Manager owns the shader cache. The cache and the backend are only ever
// touched by the goroutine running Run; everything else talks to it
// through Do.
type Manager struct {
	newBackend BackendFactory
	clock      clockwork.Clock
	logger     *log.Logger
	verbose    bool

	cmds    chan request
	started chan struct{}
	done    chan struct{}
}

type request struct {
	cmd   Command
	reply chan result
}

type result struct {
	reply Reply
	err   error
}

// Option configures a Manager.
type Option func(*Manager)

func WithClock(clock clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithVerboseShaders logs each program compile and delete.
func WithVerboseShaders(verbose bool) Option {
	return func(m *Manager) {
		m.verbose = verbose
	}
}

// NewManager creates a manager that will open its backend with newBackend
// once Run is called.
func NewManager(newBackend BackendFactory, opts ...Option) *Manager {
	m := &Manager{
		newBackend: newBackend,
		clock:      clockwork.NewRealClock(),
		logger:     log.Default(),
		cmds:       make(chan request),
		started:    make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Started is closed once the backend is open and commands are served.
func (m *Manager) Started() <-chan struct{} {
	return m.started
}

// Done is closed when Run returns.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Run locks the calling goroutine to its OS thread, opens the backend and
// serves commands until CommandStop or ctx is cancelled. All cached
// programs are destroyed before it returns.
func (m *Manager) Run(ctx context.Context) error {
	defer close(m.done)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	backend, release, err := m.newBackend()
	if err != nil {
		return err
	}
	defer release()

	cache := shader.NewCache(backend,
		shader.WithClock(m.clock),
		shader.WithLogger(m.logger.WithPrefix("shader")),
		shader.WithVerbose(m.verbose),
	)
	defer cache.Close()

	m.logger.Infof("Render thread ready on %s", backend.Renderer())
	close(m.started)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Stopping shader manager ...")
			return nil
		case req := <-m.cmds:
			reply, err := m.handle(cache, backend, req.cmd)
			req.reply <- result{reply: reply, err: err}
			if req.cmd.Type == CommandStop {
				m.logger.Info("Stopping shader manager ...")
				return nil
			}
		}
	}
}

func (m *Manager) handle(cache *shader.Cache, backend Backend, cmd Command) (Reply, error) {
	switch cmd.Type {
	case CommandCompile:
		p, cached := cache.Lookup(cmd.Requirements)
		if !cached {
			var err error
			p, err = cache.Get(cmd.Requirements)
			if err != nil {
				return Reply{}, err
			}
			m.logger.Debugf("built program %d for %s", p.ID, cmd.Requirements)
		}
		backend.UseProgram(p.ID)
		p.MarkUsed(m.clock.Now())
		return Reply{Program: newProgramResponse(p, cached)}, nil
	case CommandPrograms:
		return Reply{Records: newRecordResponses(cache.Dump())}, nil
	case CommandReport:
		var buf bytes.Buffer
		if err := cache.WriteReport(&buf); err != nil {
			return Reply{}, err
		}
		return Reply{Report: buf.String()}, nil
	case CommandClear:
		n := cache.Len()
		cache.DestroyAll()
		m.logger.Infof("Destroyed %d programs", n)
		return Reply{Destroyed: n}, nil
	case CommandStatus:
		return Reply{Status: &StatusResponse{
			Renderer: backend.Renderer(),
			Programs: cache.Len(),
		}}, nil
	case CommandStop:
		return Reply{}, nil
	}
	return Reply{}, fmt.Errorf("unknown command %q", cmd.Type)
}

// Do runs cmd on the render thread and waits for its reply.
func (m *Manager) Do(ctx context.Context, cmd Command) (Reply, error) {
	req := request{cmd: cmd, reply: make(chan result, 1)}

	select {
	case m.cmds <- req:
	case <-m.done:
		return Reply{}, ErrManagerStopped
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res.reply, res.err
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}
}

// EnqueueCommand runs cmd without waiting for the reply.
func (m *Manager) EnqueueCommand(cmd Command) {
	go func() {
		if _, err := m.Do(context.Background(), cmd); err != nil && !errors.Is(err, ErrManagerStopped) {
			m.logger.Errorf("command %s failed: %v", cmd.Type, err)
		}
	}()
}
