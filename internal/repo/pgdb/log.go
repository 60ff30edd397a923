package pgdb

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/repo/repoerrs"
	"github.com/logtrail/logtrail/internal/repo/repotypes"
	errorsUtils "github.com/logtrail/logtrail/pkg/errors"
	"github.com/logtrail/logtrail/pkg/postgres"
)

var logColumns = []string{
	"id", "user_id", "level", "message", "ts", "raw_ts",
	"tag", "thread_id", "process_id", "package_name",
}

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) Insert(ctx context.Context, entry *domain.LogEntry) (int64, error) {
	sql, args, _ := r.Builder.
		Insert("logs").
		Columns("user_id", "level", "message", "ts", "tag", "thread_id", "process_id", "package_name").
		Values(entry.UserID, entry.Level, entry.Message, entry.Timestamp,
			entry.Tag, entry.ThreadID, entry.ProcessID, entry.PackageName).
		Suffix("RETURNING id").
		ToSql()

	var id int64
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsNotNullViolation(err) || errorsUtils.IsCheckViolation(err) {
			return 0, repoerrs.ErrConstraint
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *LogRepo) Find(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error) {
	query := r.Builder.
		Select(logColumns...).
		From("logs")

	if conds := BuildLogConds(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	return r.collectLogs(ctx, query)
}

func (r *LogRepo) FindSorted(ctx context.Context, filter repotypes.LogFilter, skip, limit uint64) ([]domain.LogEntry, error) {
	query := r.Builder.
		Select(logColumns...).
		From("logs").
		OrderBy("ts DESC NULLS LAST", "id DESC").
		Offset(skip).
		Limit(limit)

	if conds := BuildLogConds(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	return r.collectLogs(ctx, query)
}

func (r *LogRepo) collectLogs(ctx context.Context, query sq.SelectBuilder) ([]domain.LogEntry, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return []domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return []domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		return []domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}

func (r *LogRepo) Count(ctx context.Context, filter repotypes.LogFilter) (int64, error) {
	query := r.Builder.
		Select("COUNT(*)").
		From("logs")

	if conds := BuildLogConds(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, _ := query.ToSql()

	var count int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return count, nil
}

// CountSince counts entries at or after the cutoff. Canonical rows compare
// on ts; legacy rows fall back to a textual comparison of raw_ts against the
// ISO form of the cutoff, which holds for ISO-formatted imports.
func (r *LogRepo) CountSince(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, _ := r.Builder.
		Select("COUNT(*)").
		From("logs").
		Where(sq.Or{
			sq.GtOrEq{"ts": cutoff},
			sq.GtOrEq{"raw_ts": cutoff.Format("2006-01-02T15:04:05")},
		}).
		ToSql()

	var count int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return count, nil
}

func (r *LogRepo) UniqueUserCount(ctx context.Context) (int64, error) {
	sql, args, _ := r.Builder.
		Select("COUNT(DISTINCT user_id)").
		From("logs").
		ToSql()

	var count int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return count, nil
}

func (r *LogRepo) DistinctTags(ctx context.Context) ([]string, error) {
	sql, args, _ := r.Builder.
		Select("DISTINCT tag").
		From("logs").
		Where("tag IS NOT NULL").
		OrderBy("tag").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	tags, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return tags, nil
}

// TopErrorTag returns the most frequent tag among error-level entries that
// carry one. The second return is false when no such entry exists.
func (r *LogRepo) TopErrorTag(ctx context.Context) (repotypes.TagCount, bool, error) {
	sql, args, _ := r.Builder.
		Select("tag", "COUNT(*) AS count_logs").
		From("logs").
		Where(sq.And{sq.ILike{"level": "error"}, sq.Expr("tag IS NOT NULL")}).
		GroupBy("tag").
		OrderBy("count_logs DESC").
		Limit(1).
		ToSql()

	var tc repotypes.TagCount
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&tc.Tag, &tc.Count)
	if errors.Is(err, pgx.ErrNoRows) {
		return repotypes.TagCount{}, false, nil
	}
	if err != nil {
		return repotypes.TagCount{}, false, errorsUtils.WrapPathErr(err)
	}
	return tc, true, nil
}

// PeakHour buckets canonical-timestamp entries by calendar hour and returns
// the fullest bucket. Legacy raw-timestamp rows are excluded, not coerced.
func (r *LogRepo) PeakHour(ctx context.Context) (repotypes.PeakBucket, bool, error) {
	sql, args, _ := r.Builder.
		Select("date_trunc('hour', ts) AS bucket", "COUNT(*) AS count_logs").
		From("logs").
		Where("ts IS NOT NULL").
		GroupBy("bucket").
		OrderBy("count_logs DESC").
		Limit(1).
		ToSql()

	var pb repotypes.PeakBucket
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&pb.BucketStart, &pb.Count)
	if errors.Is(err, pgx.ErrNoRows) {
		return repotypes.PeakBucket{}, false, nil
	}
	if err != nil {
		return repotypes.PeakBucket{}, false, errorsUtils.WrapPathErr(err)
	}
	return pb, true, nil
}

// HourlyActivity groups canonical-timestamp entries in [from, to] by
// hour-of-day. Hours from different calendar days collapse into one bucket.
func (r *LogRepo) HourlyActivity(ctx context.Context, from, to time.Time) ([]repotypes.HourBucket, error) {
	sql, args, _ := r.Builder.
		Select("EXTRACT(HOUR FROM ts)::int AS hour", "COUNT(*) AS count_logs").
		From("logs").
		Where(sq.And{
			sq.Expr("ts IS NOT NULL"),
			sq.GtOrEq{"ts": from},
			sq.LtOrEq{"ts": to},
		}).
		GroupBy("hour").
		OrderBy("hour").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	buckets, err := pgx.CollectRows(rows, pgx.RowToStructByPos[repotypes.HourBucket])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return buckets, nil
}

// MonthlyActivity groups canonical-timestamp entries by month-of-year,
// collapsing years.
func (r *LogRepo) MonthlyActivity(ctx context.Context) ([]repotypes.MonthBucket, error) {
	sql, args, _ := r.Builder.
		Select("EXTRACT(MONTH FROM ts)::int AS month", "COUNT(*) AS count_logs").
		From("logs").
		Where("ts IS NOT NULL").
		GroupBy("month").
		OrderBy("month").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	buckets, err := pgx.CollectRows(rows, pgx.RowToStructByPos[repotypes.MonthBucket])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return buckets, nil
}
