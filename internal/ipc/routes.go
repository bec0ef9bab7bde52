package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, manager ManagerInterface, socket string) {
	e.GET("/status", statusHandler(manager, socket))
	e.POST("/stop", stopHandler(manager))
	e.POST("/programs", compileHandler(manager))
	e.GET("/programs", programsHandler(manager))
	e.DELETE("/programs", clearHandler(manager))
	e.GET("/report", reportHandler(manager))
}
