package repo

import (
	"context"
	"time"

	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/repo/pgdb"
	"github.com/logtrail/logtrail/internal/repo/repotypes"
	"github.com/logtrail/logtrail/pkg/postgres"
)

type Log interface {
	Insert(ctx context.Context, entry *domain.LogEntry) (int64, error)
	Find(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error)
	FindSorted(ctx context.Context, filter repotypes.LogFilter, skip, limit uint64) ([]domain.LogEntry, error)
	Count(ctx context.Context, filter repotypes.LogFilter) (int64, error)
	CountSince(ctx context.Context, cutoff time.Time) (int64, error)
	UniqueUserCount(ctx context.Context) (int64, error)
	DistinctTags(ctx context.Context) ([]string, error)
	TopErrorTag(ctx context.Context) (repotypes.TagCount, bool, error)
	PeakHour(ctx context.Context) (repotypes.PeakBucket, bool, error)
	HourlyActivity(ctx context.Context, from, to time.Time) ([]repotypes.HourBucket, error)
	MonthlyActivity(ctx context.Context) ([]repotypes.MonthBucket, error)
}

type Settings interface {
	Get(ctx context.Context, settingsType string) ([]byte, bool, error)
	Upsert(ctx context.Context, settingsType string, payload []byte) error
}

type Repositories struct {
	Log
	Settings
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log:      pgdb.NewLogRepo(pg),
		Settings: pgdb.NewSettingsRepo(pg),
	}
}
