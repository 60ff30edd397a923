package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/metrics"
	"github.com/logtrail/logtrail/internal/service"
)

type logRoutes struct {
	logService service.Log
	counters   *metrics.Counters
}

func newLogRoutes(g *echo.Group, ls service.Log, cnt *metrics.Counters) {
	r := &logRoutes{
		logService: ls,
		counters:   cnt,
	}

	g.GET("/", r.filtered)
	g.POST("/", r.create)
	g.GET("/all", r.all)
	g.GET("/recent", r.recent)
	g.GET("/stats", r.stats)
	g.GET("/table", r.table)
	g.GET("/tags", r.tags)
	g.GET("/activity", r.activity)
}

func (r *logRoutes) filtered(c echo.Context) error {
	params := service.FilterParams{
		UserID:      c.QueryParam("userId"),
		Level:       c.QueryParam("level"),
		Tag:         c.QueryParam("tag"),
		PackageName: c.QueryParam("packageName"),
		Start:       c.QueryParam("start"),
		End:         c.QueryParam("end"),
	}

	logs, err := r.logService.Filtered(c.Request().Context(), params)
	if err != nil {
		r.counters.HttpRequests.Inc("logs_filtered", "error")
		if errors.Is(err, service.ErrValidation) {
			return errorResponse(c, http.StatusBadRequest, err)
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_filtered", "ok")
	return c.JSON(http.StatusOK, logs)
}

func (r *logRoutes) all(c echo.Context) error {
	logs, err := r.logService.All(c.Request().Context())
	if err != nil {
		r.counters.HttpRequests.Inc("logs_all", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_all", "ok")
	return c.JSON(http.StatusOK, logs)
}

func (r *logRoutes) recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rows, err := r.logService.Recent(
		c.Request().Context(),
		limit,
		c.QueryParam("userId"),
		c.QueryParam("levels"),
	)
	if err != nil {
		r.counters.HttpRequests.Inc("logs_recent", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_recent", "ok")
	return c.JSON(http.StatusOK, rows)
}

func (r *logRoutes) create(c echo.Context) error {
	var input service.CreateLogInput
	if err := c.Bind(&input); err != nil {
		r.counters.HttpRequests.Inc("logs_create", "invalid")
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := r.logService.Create(c.Request().Context(), input); err != nil {
		if errors.Is(err, service.ErrValidation) {
			r.counters.HttpRequests.Inc("logs_create", "invalid")
			return errorResponse(c, http.StatusBadRequest, err)
		}
		r.counters.HttpRequests.Inc("logs_create", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_create", "ok")
	return c.JSON(http.StatusCreated, echo.Map{"message": "Log stored"})
}

func (r *logRoutes) stats(c echo.Context) error {
	data, err := r.logService.Dashboard(c.Request().Context())
	if err != nil {
		r.counters.HttpRequests.Inc("logs_stats", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_stats", "ok")
	return c.JSON(http.StatusOK, data)
}

func (r *logRoutes) table(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 10
	}

	params := service.TableParams{
		Page:      page,
		Limit:     limit,
		Levels:    c.QueryParam("levels"),
		UserID:    c.QueryParam("userId"),
		Tags:      c.QueryParam("tags"),
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
		Search:    c.QueryParam("search"),
	}

	pageData, err := r.logService.Table(c.Request().Context(), params)
	if err != nil {
		r.counters.HttpRequests.Inc("logs_table", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_table", "ok")
	return c.JSON(http.StatusOK, pageData)
}

func (r *logRoutes) tags(c echo.Context) error {
	tags, err := r.logService.Tags(c.Request().Context())
	if err != nil {
		r.counters.HttpRequests.Inc("logs_tags", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_tags", "ok")
	return c.JSON(http.StatusOK, echo.Map{"tags": tags})
}

type activityResponse struct {
	ChartData domain.ChartData `json:"chartData"`
	Degraded  []string         `json:"degraded,omitempty"`
}

func (r *logRoutes) activity(c echo.Context) error {
	period := c.QueryParam("period")
	if period == "" {
		period = "hourly"
	}

	chart, degraded, err := r.logService.Activity(c.Request().Context(), period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			r.counters.HttpRequests.Inc("logs_activity", "invalid")
			return errorResponse(c, http.StatusBadRequest, err)
		}
		r.counters.HttpRequests.Inc("logs_activity", "error")
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	r.counters.HttpRequests.Inc("logs_activity", "ok")
	return c.JSON(http.StatusOK, activityResponse{ChartData: chart, Degraded: degraded})
}
