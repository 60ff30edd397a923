package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/metrics"
	"github.com/logtrail/logtrail/internal/service"
)

type settingsRoutes struct {
	settingsService service.Settings
	counters        *metrics.Counters
}

func newSettingsRoutes(g *echo.Group, ss service.Settings, cnt *metrics.Counters) {
	r := &settingsRoutes{
		settingsService: ss,
		counters:        cnt,
	}

	g.GET("/retention", r.getRetention)
	g.PUT("/retention", r.updateRetention)
	g.GET("/live-console", r.getLiveConsole)
	g.PUT("/live-console", r.updateLiveConsole)
}

// Update bodies bind through pointers so a missing field is told apart from
// a zero value.
type retentionUpdateRequest struct {
	RetentionPeriod   *string `json:"retentionPeriod"`
	AutoDeleteOldLogs *bool   `json:"autoDeleteOldLogs"`
}

type liveConsoleUpdateRequest struct {
	AutoRefreshInterval *string `json:"autoRefreshInterval"`
	MaxLogsToDisplay    *string `json:"maxLogsToDisplay"`
}

func (r *settingsRoutes) getRetention(c echo.Context) error {
	settings, err := r.settingsService.Retention(c.Request().Context())
	if err != nil {
		r.counters.HttpRequests.Inc("settings_retention", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("settings_retention", "ok")
	return c.JSON(http.StatusOK, settings)
}

func (r *settingsRoutes) updateRetention(c echo.Context) error {
	var req retentionUpdateRequest
	if err := c.Bind(&req); err != nil {
		r.counters.HttpRequests.Inc("settings_retention", "invalid")
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.RetentionPeriod == nil || req.AutoDeleteOldLogs == nil {
		r.counters.HttpRequests.Inc("settings_retention", "invalid")
		return errorResponse(c, http.StatusBadRequest,
			fmt.Errorf("both retentionPeriod and autoDeleteOldLogs are required"))
	}

	updated, err := r.settingsService.UpdateRetention(c.Request().Context(), domain.RetentionSettings{
		RetentionPeriod:   *req.RetentionPeriod,
		AutoDeleteOldLogs: *req.AutoDeleteOldLogs,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			r.counters.HttpRequests.Inc("settings_retention", "invalid")
			return errorResponse(c, http.StatusBadRequest, err)
		}
		r.counters.HttpRequests.Inc("settings_retention", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("settings_retention", "ok")
	return c.JSON(http.StatusOK, updated)
}

func (r *settingsRoutes) getLiveConsole(c echo.Context) error {
	settings, err := r.settingsService.LiveConsole(c.Request().Context())
	if err != nil {
		r.counters.HttpRequests.Inc("settings_live_console", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("settings_live_console", "ok")
	return c.JSON(http.StatusOK, settings)
}

func (r *settingsRoutes) updateLiveConsole(c echo.Context) error {
	var req liveConsoleUpdateRequest
	if err := c.Bind(&req); err != nil {
		r.counters.HttpRequests.Inc("settings_live_console", "invalid")
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.AutoRefreshInterval == nil || req.MaxLogsToDisplay == nil {
		r.counters.HttpRequests.Inc("settings_live_console", "invalid")
		return errorResponse(c, http.StatusBadRequest,
			fmt.Errorf("both autoRefreshInterval and maxLogsToDisplay are required"))
	}

	updated, err := r.settingsService.UpdateLiveConsole(c.Request().Context(), domain.LiveConsoleSettings{
		AutoRefreshInterval: *req.AutoRefreshInterval,
		MaxLogsToDisplay:    *req.MaxLogsToDisplay,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			r.counters.HttpRequests.Inc("settings_live_console", "invalid")
			return errorResponse(c, http.StatusBadRequest, err)
		}
		r.counters.HttpRequests.Inc("settings_live_console", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("settings_live_console", "ok")
	return c.JSON(http.StatusOK, updated)
}
