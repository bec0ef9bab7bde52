package ipc

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/shadercache"
	"github.com/matjam/shadercache/internal/shader"
	"github.com/spf13/viper"
)

func do(c echo.Context, m ManagerInterface, cmd Command) (Reply, error) {
	ctx := c.Request().Context()
	if timeout := viper.GetDuration("request_timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return m.Do(ctx, cmd)
}

func errorJSON(c echo.Context, err error) error {
	var berr *shader.BuildError
	switch {
	case errors.As(err, &berr):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: berr.Unwrap().Error(),
			Stage: berr.Stage.String(),
			Log:   berr.Log,
		})
	case errors.Is(err, ErrManagerStopped):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "render thread did not answer in time"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// GET /status
func statusHandler(m ManagerInterface, socket string) echo.HandlerFunc {
	return func(c echo.Context) error {
		reply, err := do(c, m, Command{Type: CommandStatus})
		if err != nil {
			return errorJSON(c, err)
		}
		status := *reply.Status
		status.Status = "ok"
		status.Message = "shadercache is running"
		status.Version = strings.Trim(shadercache.Version, "\n\r ")
		status.PID = os.Getpid()
		status.Socket = socket
		status.Config = viper.ConfigFileUsed()
		return c.JSONPretty(http.StatusOK, status, "  ")
	}
}

// POST /stop
func stopHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.EnqueueCommand(Command{Type: CommandStop})
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// POST /programs
func compileHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body CompileRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON compile request"})
		}
		req, err := body.Requirements()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}

		reply, err := do(c, m, Command{Type: CommandCompile, Requirements: req})
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, reply.Program)
	}
}

// GET /programs
func programsHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		reply, err := do(c, m, Command{Type: CommandPrograms})
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, reply.Records)
	}
}

// DELETE /programs
func clearHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		reply, err := do(c, m, Command{Type: CommandClear})
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, ClearResponse{Status: "ok", Destroyed: reply.Destroyed})
	}
}

// GET /report
func reportHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		reply, err := do(c, m, Command{Type: CommandReport})
		if err != nil {
			return errorJSON(c, err)
		}
		return c.String(http.StatusOK, reply.Report)
	}
}
