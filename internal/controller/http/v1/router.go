package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/logtrail/logtrail/internal/metrics"
	"github.com/logtrail/logtrail/internal/service"
)

// ConfigureRouter wires the REST surface. CORS is open, the dashboard is
// served from another origin.
func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, appName, appVersion string) {
	handler.Use(middleware.Recover())
	handler.Use(middleware.CORS())

	handler.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"name":    appName,
			"version": appVersion,
			"status":  "ok",
		})
	})

	newLogRoutes(handler.Group("/logs"), services.Log, counters)
	newSettingsRoutes(handler.Group("/settings"), services.Settings, counters)
}

func errorResponse(c echo.Context, status int, err error) error {
	return c.JSON(status, echo.Map{"error": err.Error()})
}
