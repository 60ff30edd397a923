package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/logtrail/logtrail/internal/broker"
	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/metrics"
	"github.com/logtrail/logtrail/internal/repo"
	"github.com/logtrail/logtrail/internal/repo/repotypes"
	"github.com/logtrail/logtrail/internal/timestamp"
	errorsUtils "github.com/logtrail/logtrail/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultRecentLimit = 100
	maxRecentLimit     = 200

	rateWindowMinutes = 10
	activityWindow    = 24 * time.Hour
)

const (
	chartLabel      = "Log Activity"
	chartBorder     = "rgb(59, 130, 246)"
	chartBackground = "rgba(59, 130, 246, 0.5)"
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type LogService struct {
	logRepo  repo.Log
	producer broker.Producer
	counters *metrics.Counters
	now      func() time.Time
}

type LogOption func(*LogService)

// WithClock overrides the time source, used by tests exercising the
// trailing-window aggregates.
func WithClock(now func() time.Time) LogOption {
	return func(s *LogService) {
		s.now = now
	}
}

func NewLogService(lr repo.Log, producer broker.Producer, cnt *metrics.Counters, opts ...LogOption) *LogService {
	s := &LogService{
		logRepo:  lr,
		producer: producer,
		counters: cnt,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LogService) Create(ctx context.Context, input CreateLogInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"userId", input.UserID},
		{"level", input.Level},
		{"message", input.Message},
		{"timestamp", input.Timestamp},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: missing required field: %s", ErrValidation, field.name)
		}
	}

	ts, err := timestamp.Parse(input.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	entry := &domain.LogEntry{
		UserID:      input.UserID,
		Level:       input.Level,
		Message:     input.Message,
		Timestamp:   &ts,
		Tag:         input.Tag,
		ThreadID:    input.ThreadID,
		ProcessID:   input.ProcessID,
		PackageName: input.PackageName,
	}

	id, err := s.logRepo.Insert(ctx, entry)
	if err != nil {
		log.WithFields(log.Fields{
			"userId": entry.UserID,
			"level":  entry.Level,
			"error":  err,
		}).Error("Failed to save log")
		return errorsUtils.WrapPathErr(ErrCannotCreateLog)
	}
	entry.ID = id

	s.counters.LogsReceived.Inc(strings.ToLower(entry.Level))
	log.WithFields(log.Fields{
		"userId": entry.UserID,
		"level":  entry.Level,
		"id":     id,
	}).Info("Log saved successfully")

	s.relay(ctx, entry)
	return nil
}

// relay mirrors an accepted entry to the broker topic. The entry is already
// durable, so a publish failure is logged and ignored.
func (s *LogService) relay(ctx context.Context, entry *domain.LogEntry) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"id":        logID(entry.ID),
		"userId":    entry.UserID,
		"level":     entry.Level,
		"message":   entry.Message,
		"timestamp": entry.Timestamp.UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Warnf("Failed to encode log entry for relay: %v", err)
		return
	}

	if err := s.producer.SendMessage(ctx, payload); err != nil {
		log.WithFields(log.Fields{
			"id":    entry.ID,
			"error": err,
		}).Warn("Log relay failed, entry is stored")
	}
}

func (s *LogService) Filtered(ctx context.Context, params FilterParams) ([]domain.LogView, error) {
	filter := repotypes.LogFilter{
		UserID:      params.UserID,
		PackageName: params.PackageName,
	}
	if params.Level != "" {
		filter.Levels = []string{params.Level}
	}
	if params.Tag != "" {
		filter.Tags = []string{params.Tag}
	}

	if params.Start != "" {
		from, err := timestamp.Parse(params.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter.From = from
	}
	if params.End != "" {
		to, err := timestamp.Parse(params.End)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter.To = to
	}

	entries, err := s.logRepo.Find(ctx, filter)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return toViews(entries), nil
}

func (s *LogService) All(ctx context.Context) ([]domain.LogView, error) {
	entries, err := s.logRepo.Find(ctx, repotypes.LogFilter{})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return toViews(entries), nil
}

// Recent returns the live-console rows, oldest first. A storage failure
// degrades to an empty console rather than an error.
func (s *LogService) Recent(ctx context.Context, limit int, userID, levels string) ([]domain.ConsoleRow, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	filter := repotypes.LogFilter{
		UserID: userID,
		Levels: splitCSV(levels),
	}

	entries, err := s.logRepo.FindSorted(ctx, filter, 0, uint64(limit))
	if err != nil {
		log.Warnf("Error fetching recent logs: %v", err)
		return []domain.ConsoleRow{}, nil
	}

	// Fetched newest-first, served oldest-first.
	rows := make([]domain.ConsoleRow, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		clock := ""
		switch {
		case entry.Timestamp != nil:
			clock = timestamp.FormatClock(*entry.Timestamp)
		case entry.RawTimestamp != nil:
			clock = timestamp.ClockFromRaw(*entry.RawTimestamp)
		}
		rows = append(rows, domain.ConsoleRow{
			ID:        logID(entry.ID),
			Timestamp: clock,
			Level:     strings.ToLower(entry.Level),
			Message:   entry.Message,
			UserID:    entry.UserID,
		})
	}
	return rows, nil
}

func (s *LogService) Dashboard(ctx context.Context) (domain.DashboardData, error) {
	errorCount, err := s.logRepo.Count(ctx, repotypes.LogFilter{Levels: []string{"error"}})
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	totalCount, err := s.logRepo.Count(ctx, repotypes.LogFilter{})
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	uniqueUsers, err := s.logRepo.UniqueUserCount(ctx)
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	topTag, err := s.topErrorTag(ctx, errorCount)
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	rate, err := s.recentLogRate(ctx)
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	degraded := []string{}

	peak, reason := s.peakLogs(ctx, totalCount)
	if reason != "" {
		degraded = append(degraded, reason)
	}

	chart, reason := s.hourlyChart(ctx)
	if reason != "" {
		degraded = append(degraded, reason)
	}

	return domain.DashboardData{
		Stats: domain.Stats{
			Errors:      errorCount,
			TotalLogs:   totalCount,
			UniqueUsers: uniqueUsers,
			TopErrorTag: topTag,
			LogRate:     rate,
			PeakLogs:    peak,
		},
		ChartData: chart,
		Degraded:  degraded,
	}, nil
}

// Activity serves one time-bucketed chart on its own. period is "hourly" or
// "monthly".
func (s *LogService) Activity(ctx context.Context, period string) (domain.ChartData, []string, error) {
	switch period {
	case "hourly":
		chart, reason := s.hourlyChart(ctx)
		return chart, degradationList(reason), nil
	case "monthly":
		chart, reason, err := s.monthlyChart(ctx)
		if err != nil {
			return domain.ChartData{}, nil, err
		}
		return chart, degradationList(reason), nil
	default:
		return domain.ChartData{}, nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
}

func (s *LogService) topErrorTag(ctx context.Context, errorCount int64) (domain.TopErrorTag, error) {
	tc, found, err := s.logRepo.TopErrorTag(ctx)
	if err != nil {
		return domain.TopErrorTag{}, err
	}
	if !found {
		return domain.TopErrorTag{Tag: "none", Percentage: 0}, nil
	}

	percentage := 0
	if errorCount > 0 {
		percentage = int(math.Round(float64(tc.Count) / float64(errorCount) * 100))
	}
	return domain.TopErrorTag{Tag: tc.Tag, Percentage: percentage}, nil
}

func (s *LogService) recentLogRate(ctx context.Context) (float64, error) {
	cutoff := s.now().UTC().Add(-rateWindowMinutes * time.Minute)
	count, err := s.logRepo.CountSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	return math.Round(float64(count)/rateWindowMinutes*10) / 10, nil
}

// peakLogs is best-effort: when the hour bucketing fails, or yields no rows
// while logs exist, the figure is replaced by a coarse estimate and the
// degradation reason is reported alongside.
func (s *LogService) peakLogs(ctx context.Context, totalCount int64) (domain.PeakLogs, string) {
	pb, found, err := s.logRepo.PeakHour(ctx)
	if err == nil && found {
		return domain.PeakLogs{Count: pb.Count, Time: pb.BucketStart.Format("15:00")}, ""
	}

	if err != nil {
		log.Warnf("Peak hour aggregation failed: %v", err)
	}

	if totalCount > 0 {
		count := totalCount
		if count > 50 {
			count = 50
		}
		reason := "peakLogs: estimated, hour bucketing unavailable"
		return domain.PeakLogs{Count: count, Time: "15:00"}, reason
	}

	if err != nil {
		return domain.PeakLogs{Count: 0, Time: "00:00"}, "peakLogs: hour bucketing unavailable"
	}
	// No logs at all: an exact zero, not a degradation.
	return domain.PeakLogs{Count: 0, Time: "00:00"}, ""
}

func (s *LogService) hourlyChart(ctx context.Context) (domain.ChartData, string) {
	now := s.now().UTC()
	data := make([]int64, 24)

	buckets, err := s.logRepo.HourlyActivity(ctx, now.Add(-activityWindow), now)
	reason := ""
	if err != nil {
		log.Warnf("Hourly aggregation failed: %v", err)
		// Synthetic sample anchored at the current hour, so the dashboard
		// still renders a plausible shape.
		hour := now.Hour()
		data[hour] = 10
		data[(hour+23)%24] = 8
		data[(hour+22)%24] = 15
		data[(hour+21)%24] = 5
		reason = "hourlyActivity: synthetic sample, aggregation failed"
	} else {
		for _, b := range buckets {
			if b.Hour >= 0 && b.Hour < 24 {
				data[b.Hour] = b.Count
			}
		}
	}

	return chartData(hourLabels(), data), reason
}

func (s *LogService) monthlyChart(ctx context.Context) (domain.ChartData, string, error) {
	data := make([]int64, 12)

	buckets, err := s.logRepo.MonthlyActivity(ctx)
	if err == nil && len(buckets) > 0 {
		for _, b := range buckets {
			if b.Month >= 1 && b.Month <= 12 {
				data[b.Month-1] = b.Count
			}
		}
		return chartData(monthLabels, data), "", nil
	}

	if err != nil {
		log.Warnf("Monthly aggregation failed: %v", err)
	}

	// Fallback: place the whole total in the current month.
	total, countErr := s.logRepo.Count(ctx, repotypes.LogFilter{})
	if countErr != nil {
		return domain.ChartData{}, "", errorsUtils.WrapPathErr(countErr)
	}

	reason := ""
	if err != nil || total > 0 {
		reason = "monthlyActivity: estimated, month bucketing unavailable"
	}
	data[int(s.now().UTC().Month())-1] = total
	return chartData(monthLabels, data), reason, nil
}

func (s *LogService) Table(ctx context.Context, params TableParams) (domain.LogPage, error) {
	page := clampPage(params.Page)
	limit := clampLimit(params.Limit)

	filter := repotypes.LogFilter{
		UserID: params.UserID,
		Levels: splitCSV(params.Levels),
		Tags:   splitCSV(params.Tags),
		Search: params.Search,
	}

	// Unparseable date bounds are skipped, not fatal: the table always
	// answers.
	if params.StartDate != "" {
		if from, err := timestamp.Parse(params.StartDate); err == nil {
			filter.From = from
		} else {
			log.Debugf("Ignoring start date %q: %v", params.StartDate, err)
		}
	}
	if params.EndDate != "" {
		if to, err := timestamp.Parse(params.EndDate); err == nil {
			filter.To = to
		} else {
			log.Debugf("Ignoring end date %q: %v", params.EndDate, err)
		}
	}

	totalCount, err := s.logRepo.Count(ctx, filter)
	if err != nil {
		log.Warnf("Error fetching paginated logs: %v", err)
		return emptyPage(page, limit), nil
	}

	skip := uint64(page-1) * uint64(limit)
	entries, err := s.logRepo.FindSorted(ctx, filter, skip, uint64(limit))
	if err != nil {
		log.Warnf("Error fetching paginated logs: %v", err)
		return emptyPage(page, limit), nil
	}

	rows := make([]domain.TableRow, 0, len(entries))
	for _, entry := range entries {
		full := ""
		switch {
		case entry.Timestamp != nil:
			full = timestamp.FormatFull(*entry.Timestamp)
		case entry.RawTimestamp != nil:
			full = timestamp.FullFromRaw(*entry.RawTimestamp)
		}
		rows = append(rows, domain.TableRow{
			ID:          logID(entry.ID),
			UserID:      entry.UserID,
			Level:       entry.Level,
			Message:     entry.Message,
			Timestamp:   full,
			Tag:         entry.Tag,
			ThreadID:    entry.ThreadID,
			ProcessID:   entry.ProcessID,
			PackageName: entry.PackageName,
		})
	}

	return domain.LogPage{
		Logs:       rows,
		Pagination: paginate(page, limit, totalCount),
	}, nil
}

func (s *LogService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.logRepo.DistinctTags(ctx)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func toViews(entries []domain.LogEntry) []domain.LogView {
	views := make([]domain.LogView, 0, len(entries))
	for _, entry := range entries {
		ts := ""
		switch {
		case entry.Timestamp != nil:
			ts = entry.Timestamp.UTC().Format(time.RFC3339)
		case entry.RawTimestamp != nil:
			ts = *entry.RawTimestamp
		}
		views = append(views, domain.LogView{
			ID:          logID(entry.ID),
			UserID:      entry.UserID,
			Level:       entry.Level,
			Message:     entry.Message,
			Timestamp:   ts,
			Tag:         entry.Tag,
			ThreadID:    entry.ThreadID,
			ProcessID:   entry.ProcessID,
			PackageName: entry.PackageName,
		})
	}
	return views
}

func chartData(labels []string, data []int64) domain.ChartData {
	return domain.ChartData{
		Labels: labels,
		Datasets: []domain.ChartDataset{{
			Label:           chartLabel,
			Data:            data,
			BorderColor:     chartBorder,
			BackgroundColor: chartBackground,
		}},
	}
}

func hourLabels() []string {
	labels := make([]string, 24)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:00", i)
	}
	return labels
}

func degradationList(reason string) []string {
	if reason == "" {
		return []string{}
	}
	return []string{reason}
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func logID(id int64) string {
	return "log_" + strconv.FormatInt(id, 10)
}
