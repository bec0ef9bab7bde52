package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/matjam/shadercache/internal/middleware"
)

const socketName = "shadercache.sock"

// DefaultSocketPath is $XDG_RUNTIME_DIR/shadercache.sock, falling back to the
// temp dir.
func DefaultSocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, socketName)
}

// Server exposes a Manager over HTTP on a unix socket.
type Server struct {
	socket string
	echo   *echo.Echo
}

func NewServer(manager ManagerInterface, socket string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, manager, socket)

	return &Server{socket: socket, echo: e}
}

// Handler is the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Listen binds the socket, replacing a stale one left by a previous run.
func (s *Server) Listen() error {
	if _, err := os.Stat(s.socket); err == nil {
		_ = os.Remove(s.socket)
	}

	listener, err := net.Listen("unix", s.socket)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.socket, err)
	}
	s.echo.Listener = listener
	return nil
}

// Serve blocks until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Serve() error {
	if s.echo.Listener == nil {
		return errors.New("socket server is not listening")
	}
	server := new(http.Server)
	if err := s.echo.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("socket server error: %w", err)
	}
	return nil
}

// Start is Listen followed by Serve.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops the server and removes the socket file.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	_ = os.Remove(s.socket)
	return err
}
