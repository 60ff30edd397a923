package service

import (
	"context"

	"github.com/logtrail/logtrail/internal/broker"
	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/metrics"
	"github.com/logtrail/logtrail/internal/repo"
)

// CreateLogInput is the wire shape of a write request. Timestamp stays a
// string until validation normalizes it.
type CreateLogInput struct {
	UserID      string  `json:"userId"`
	Level       string  `json:"level"`
	Message     string  `json:"message"`
	Timestamp   string  `json:"timestamp"`
	Tag         *string `json:"tag"`
	ThreadID    *string `json:"threadId"`
	ProcessID   *string `json:"processId"`
	PackageName *string `json:"packageName"`
}

// FilterParams carries the raw query values of the filtered-logs endpoint.
type FilterParams struct {
	UserID      string
	Level       string
	Tag         string
	PackageName string
	Start       string
	End         string
}

// TableParams carries the raw query values of the table endpoint. Levels and
// Tags are comma-separated.
type TableParams struct {
	Page      int
	Limit     int
	Levels    string
	UserID    string
	Tags      string
	StartDate string
	EndDate   string
	Search    string
}

type Log interface {
	Create(ctx context.Context, input CreateLogInput) error
	Filtered(ctx context.Context, params FilterParams) ([]domain.LogView, error)
	All(ctx context.Context) ([]domain.LogView, error)
	Recent(ctx context.Context, limit int, userID, levels string) ([]domain.ConsoleRow, error)
	Dashboard(ctx context.Context) (domain.DashboardData, error)
	Activity(ctx context.Context, period string) (domain.ChartData, []string, error)
	Table(ctx context.Context, params TableParams) (domain.LogPage, error)
	Tags(ctx context.Context) ([]string, error)
}

type Settings interface {
	Retention(ctx context.Context) (domain.RetentionSettings, error)
	UpdateRetention(ctx context.Context, settings domain.RetentionSettings) (domain.RetentionSettings, error)
	LiveConsole(ctx context.Context) (domain.LiveConsoleSettings, error)
	UpdateLiveConsole(ctx context.Context, settings domain.LiveConsoleSettings) (domain.LiveConsoleSettings, error)
}

type Services struct {
	Log      Log
	Settings Settings
}

type ServicesDependencies struct {
	Repos    *repo.Repositories
	Producer broker.Producer
	Counters *metrics.Counters
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log:      NewLogService(deps.Repos.Log, deps.Producer, deps.Counters),
		Settings: NewSettingsService(deps.Repos.Settings),
	}
}
