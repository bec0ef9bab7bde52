package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/matjam/shadercache/internal/eglcontext"
	"github.com/matjam/shadercache/internal/gldriver"
	"github.com/matjam/shadercache/internal/ipc"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStartCmd() *cobra.Command {
	var background bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the shadercache daemon",
		Long: `Opens an offscreen GL context and serves shader program requests on the
unix socket until stopped.`,
		Run: func(cmd *cobra.Command, args []string) {
			if background {
				daemonize()
				return
			}
			StartManager()
		},
	}

	cmd.Flags().BoolVarP(&background, "background", "b", false, "Run as a daemon")

	return cmd
}

// daemonize forks through go-daemon. The child re-enters here with the same
// arguments, Reborn returns a nil process and it goes on to run the manager.
func daemonize() {
	dctx := &daemon.Context{
		PidFileName: utils.PidFilePath(),
		PidFilePerm: 0644,
		WorkDir:     "/",
		Umask:       027,
		Env:         append(os.Environ(), "BACKGROUND_PROCESS=1"),
		Args:        os.Args,
	}

	child, err := dctx.Reborn()
	if err != nil {
		log.Fatalf("Unable to run in background: %v", err)
	}
	if child != nil {
		log.Infof("shadercache started in background, PID %d", child.Pid)
		return
	}
	defer dctx.Release()

	StartManager()
}

func StartManager() {
	log.Infof("StartManager() started in PID: %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	socket := utils.SocketPath()

	client := ipc.NewClient(socket)
	if _, err := client.Status(); err == nil {
		client.Close()
		log.Infof("shadercache is already running, exiting")
		os.Exit(0)
	}
	client.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	manager := ipc.NewManager(openGLBackend,
		ipc.WithVerboseShaders(viper.GetBool("verbose_shaders")),
	)

	server := ipc.NewServer(manager, socket)
	if err := server.Listen(); err != nil {
		log.Fatalf("Error starting socket server: %v", err)
	}

	go func() {
		log.Infof("Starting socket server on %s", socket)
		if err := server.Serve(); err != nil {
			log.Errorf("%v", err)
			cancel()
		}
	}()

	if err := manager.Run(ctx); err != nil {
		log.Errorf("Shader manager failed: %v", err)
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Errorf("Error shutting down socket server: %v", err)
	}

	log.Infof("shadercache exited")
}

// openGLBackend runs on the manager's locked thread.
func openGLBackend() (ipc.Backend, func(), error) {
	ctx, err := eglcontext.Open()
	if err != nil {
		return nil, nil, err
	}

	driver, err := gldriver.New(ctx.ProcAddress)
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}

	log.Infof("Using %s", driver.Renderer())
	return driver, ctx.Close, nil
}

func setupRotatingLogger() {
	logDir := utils.CanonicalPath(viper.GetString("log_dir"))
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}
	logPath := filepath.Join(logDir, "shadercache.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	if !viper.GetBool("debug") {
		log.SetLevel(log.InfoLevel)
	}
}
