package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/metrics"
	repomocks "github.com/logtrail/logtrail/internal/mocks/repository"
	"github.com/logtrail/logtrail/internal/repo/repotypes"
	"github.com/logtrail/logtrail/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newLogService(t *testing.T, clock time.Time) (*service.LogService, *repomocks.MockLog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := repomocks.NewMockLog(ctrl)
	svc := service.NewLogService(mockRepo, nil, metrics.NewTestCounters(),
		service.WithClock(func() time.Time { return clock }))
	return svc, mockRepo
}

func TestLogService_Create(t *testing.T) {
	now := time.Date(2023, 12, 15, 10, 30, 45, 0, time.UTC)
	valid := service.CreateLogInput{
		UserID:    "user-7",
		Level:     "ERROR",
		Message:   "boom",
		Timestamp: "2023-12-15T10:30:45Z",
		Tag:       strPtr("auth"),
	}

	testCases := []struct {
		name         string
		input        service.CreateLogInput
		mockBehavior func(r *repomocks.MockLog)
		wantErr      error
	}{
		{
			name:  "success",
			input: valid,
			mockBehavior: func(r *repomocks.MockLog) {
				r.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry *domain.LogEntry) (int64, error) {
						assert.Equal(t, "user-7", entry.UserID)
						assert.Equal(t, "ERROR", entry.Level)
						require.NotNil(t, entry.Timestamp)
						assert.True(t, now.Equal(*entry.Timestamp))
						require.NotNil(t, entry.Tag)
						assert.Equal(t, "auth", *entry.Tag)
						return 42, nil
					})
			},
		},
		{
			name: "missing required field",
			input: service.CreateLogInput{
				UserID:    "user-7",
				Message:   "boom",
				Timestamp: "2023-12-15T10:30:45Z",
			},
			mockBehavior: func(r *repomocks.MockLog) {},
			wantErr:      service.ErrValidation,
		},
		{
			name: "invalid timestamp rejected before insert",
			input: service.CreateLogInput{
				UserID:    "user-7",
				Level:     "info",
				Message:   "boom",
				Timestamp: "not-a-date",
			},
			mockBehavior: func(r *repomocks.MockLog) {},
			wantErr:      service.ErrValidation,
		},
		{
			name:  "repository error",
			input: valid,
			mockBehavior: func(r *repomocks.MockLog) {
				r.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("db error"))
			},
			wantErr: service.ErrCannotCreateLog,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, now)
			tc.mockBehavior(mockRepo)

			err := svc.Create(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLogService_Recent(t *testing.T) {
	now := time.Date(2023, 12, 15, 12, 0, 0, 0, time.UTC)

	t.Run("formats clock timestamps and reverses to oldest first", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		newest := time.Date(2023, 12, 15, 10, 30, 45, 0, time.UTC)
		older := time.Date(2023, 12, 15, 9, 15, 0, 0, time.UTC)
		mockRepo.EXPECT().
			FindSorted(gomock.Any(), repotypes.LogFilter{}, uint64(0), uint64(100)).
			Return([]domain.LogEntry{
				{ID: 2, UserID: "u1", Level: "INFO", Message: "second", Timestamp: timePtr(newest)},
				{ID: 1, UserID: "u2", Level: "error", Message: "first", Timestamp: timePtr(older)},
			}, nil)

		rows, err := svc.Recent(context.Background(), 0, "", "")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, domain.ConsoleRow{
			ID: "log_1", Timestamp: "09:15:00", Level: "error", Message: "first", UserID: "u2",
		}, rows[0])
		assert.Equal(t, domain.ConsoleRow{
			ID: "log_2", Timestamp: "10:30:45", Level: "info", Message: "second", UserID: "u1",
		}, rows[1])
	})

	t.Run("legacy raw timestamp degrades to substring extraction", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			FindSorted(gomock.Any(), gomock.Any(), uint64(0), uint64(100)).
			Return([]domain.LogEntry{
				{ID: 3, UserID: "u1", Level: "WARN", Message: "legacy", RawTimestamp: strPtr("2023-99-01T08:01:02.555")},
			}, nil)

		rows, err := svc.Recent(context.Background(), 0, "", "")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "08:01:02", rows[0].Timestamp)
	})

	t.Run("limit is clamped and filters forwarded", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			FindSorted(gomock.Any(), repotypes.LogFilter{
				UserID: "alice",
				Levels: []string{"error", "warn"},
			}, uint64(0), uint64(200)).
			Return([]domain.LogEntry{}, nil)

		rows, err := svc.Recent(context.Background(), 500, "alice", "error, warn")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("storage failure degrades to empty console", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			FindSorted(gomock.Any(), gomock.Any(), uint64(0), uint64(100)).
			Return(nil, errors.New("db error"))

		rows, err := svc.Recent(context.Background(), 0, "", "")
		require.NoError(t, err)
		assert.Equal(t, []domain.ConsoleRow{}, rows)
	})
}

func TestLogService_Table(t *testing.T) {
	now := time.Date(2023, 12, 15, 12, 0, 0, 0, time.UTC)

	t.Run("formats full timestamps and paginates", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		ts := time.Date(2023, 12, 15, 10, 30, 45, 0, time.UTC)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(25), nil)
		mockRepo.EXPECT().
			FindSorted(gomock.Any(), gomock.Any(), uint64(0), uint64(10)).
			Return([]domain.LogEntry{
				{ID: 9, UserID: "u1", Level: "info", Message: "hello", Timestamp: timePtr(ts), Tag: strPtr("net")},
			}, nil)

		page, err := svc.Table(context.Background(), service.TableParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Logs, 1)

		row := page.Logs[0]
		assert.Equal(t, "log_9", row.ID)
		assert.Equal(t, "2023-12-15 10:30:45", row.Timestamp)
		require.NotNil(t, row.Tag)
		assert.Equal(t, "net", *row.Tag)
		assert.Nil(t, row.ThreadID)

		assert.Equal(t, domain.Pagination{
			CurrentPage: 1,
			TotalPages:  3,
			TotalCount:  25,
			PerPage:     10,
			HasNext:     true,
			HasPrev:     false,
		}, page.Pagination)
	})

	t.Run("last page has no next", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(25), nil)
		mockRepo.EXPECT().
			FindSorted(gomock.Any(), gomock.Any(), uint64(20), uint64(10)).
			Return([]domain.LogEntry{}, nil)

		page, err := svc.Table(context.Background(), service.TableParams{Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.False(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
		assert.Equal(t, 3, page.Pagination.TotalPages)
	})

	t.Run("page and limit are clamped", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			FindSorted(gomock.Any(), gomock.Any(), uint64(0), uint64(100)).
			Return([]domain.LogEntry{}, nil)

		page, err := svc.Table(context.Background(), service.TableParams{Page: -4, Limit: 900})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Pagination.CurrentPage)
		assert.Equal(t, 100, page.Pagination.PerPage)
	})

	t.Run("storage failure degrades to empty page", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("db error"))

		page, err := svc.Table(context.Background(), service.TableParams{Page: 2, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, []domain.TableRow{}, page.Logs)
		assert.Equal(t, domain.Pagination{
			CurrentPage: 2,
			TotalPages:  0,
			TotalCount:  0,
			PerPage:     10,
			HasNext:     false,
			HasPrev:     false,
		}, page.Pagination)
	})

	t.Run("search term is forwarded with the field filters", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().
			Count(gomock.Any(), repotypes.LogFilter{
				UserID: "alice",
				Levels: []string{"error"},
				Search: "timeout",
			}).
			Return(int64(0), nil)
		mockRepo.EXPECT().
			FindSorted(gomock.Any(), gomock.Any(), uint64(0), uint64(10)).
			Return([]domain.LogEntry{}, nil)

		_, err := svc.Table(context.Background(), service.TableParams{
			Page: 1, Limit: 10, UserID: "alice", Levels: "error", Search: "timeout",
		})
		require.NoError(t, err)
	})
}

func TestLogService_Dashboard(t *testing.T) {
	now := time.Date(2023, 12, 15, 14, 0, 0, 0, time.UTC)
	errorFilter := repotypes.LogFilter{Levels: []string{"error"}}

	t.Run("exact aggregates", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		peakStart := time.Date(2023, 12, 15, 9, 0, 0, 0, time.UTC)
		mockRepo.EXPECT().Count(gomock.Any(), errorFilter).Return(int64(20), nil)
		mockRepo.EXPECT().Count(gomock.Any(), repotypes.LogFilter{}).Return(int64(120), nil)
		mockRepo.EXPECT().UniqueUserCount(gomock.Any()).Return(int64(7), nil)
		mockRepo.EXPECT().TopErrorTag(gomock.Any()).
			Return(repotypes.TagCount{Tag: "auth", Count: 5}, true, nil)
		mockRepo.EXPECT().CountSince(gomock.Any(), now.Add(-10*time.Minute)).
			Return(int64(25), nil)
		mockRepo.EXPECT().PeakHour(gomock.Any()).
			Return(repotypes.PeakBucket{BucketStart: peakStart, Count: 33}, true, nil)
		mockRepo.EXPECT().HourlyActivity(gomock.Any(), now.Add(-24*time.Hour), now).
			Return([]repotypes.HourBucket{{Hour: 14, Count: 11}}, nil)

		data, err := svc.Dashboard(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(20), data.Stats.Errors)
		assert.Equal(t, int64(120), data.Stats.TotalLogs)
		assert.Equal(t, int64(7), data.Stats.UniqueUsers)
		assert.Equal(t, domain.TopErrorTag{Tag: "auth", Percentage: 25}, data.Stats.TopErrorTag)
		assert.Equal(t, 2.5, data.Stats.LogRate)
		assert.Equal(t, domain.PeakLogs{Count: 33, Time: "09:00"}, data.Stats.PeakLogs)
		assert.Empty(t, data.Degraded)

		require.Len(t, data.ChartData.Labels, 24)
		assert.Equal(t, "00:00", data.ChartData.Labels[0])
		assert.Equal(t, "23:00", data.ChartData.Labels[23])
		require.Len(t, data.ChartData.Datasets, 1)

		chart := data.ChartData.Datasets[0].Data
		require.Len(t, chart, 24)
		for hour, count := range chart {
			if hour == 14 {
				assert.Equal(t, int64(11), count)
			} else {
				assert.Zero(t, count)
			}
		}
	})

	t.Run("no error tags yields the none marker", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().Count(gomock.Any(), errorFilter).Return(int64(0), nil)
		mockRepo.EXPECT().Count(gomock.Any(), repotypes.LogFilter{}).Return(int64(0), nil)
		mockRepo.EXPECT().UniqueUserCount(gomock.Any()).Return(int64(0), nil)
		mockRepo.EXPECT().TopErrorTag(gomock.Any()).
			Return(repotypes.TagCount{}, false, nil)
		mockRepo.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		mockRepo.EXPECT().PeakHour(gomock.Any()).
			Return(repotypes.PeakBucket{}, false, nil)
		mockRepo.EXPECT().HourlyActivity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repotypes.HourBucket{}, nil)

		data, err := svc.Dashboard(context.Background())
		require.NoError(t, err)

		assert.Equal(t, domain.TopErrorTag{Tag: "none", Percentage: 0}, data.Stats.TopErrorTag)
		// No logs at all: the zero peak is exact, not degraded.
		assert.Equal(t, domain.PeakLogs{Count: 0, Time: "00:00"}, data.Stats.PeakLogs)
		assert.Empty(t, data.Degraded)
	})

	t.Run("bucketing failures degrade with reasons", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().Count(gomock.Any(), errorFilter).Return(int64(3), nil)
		mockRepo.EXPECT().Count(gomock.Any(), repotypes.LogFilter{}).Return(int64(80), nil)
		mockRepo.EXPECT().UniqueUserCount(gomock.Any()).Return(int64(4), nil)
		mockRepo.EXPECT().TopErrorTag(gomock.Any()).
			Return(repotypes.TagCount{Tag: "io", Count: 3}, true, nil)
		mockRepo.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		mockRepo.EXPECT().PeakHour(gomock.Any()).
			Return(repotypes.PeakBucket{}, false, errors.New("db error"))
		mockRepo.EXPECT().HourlyActivity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		data, err := svc.Dashboard(context.Background())
		require.NoError(t, err)

		// Peak estimate is capped at 50.
		assert.Equal(t, domain.PeakLogs{Count: 50, Time: "15:00"}, data.Stats.PeakLogs)
		require.Len(t, data.Degraded, 2)

		// Synthetic sample anchored at the current hour (14:00).
		chart := data.ChartData.Datasets[0].Data
		assert.Equal(t, int64(10), chart[14])
		assert.Equal(t, int64(8), chart[13])
		assert.Equal(t, int64(15), chart[12])
		assert.Equal(t, int64(5), chart[11])
	})

	t.Run("count failure propagates", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().Count(gomock.Any(), errorFilter).
			Return(int64(0), errors.New("db error"))

		_, err := svc.Dashboard(context.Background())
		assert.Error(t, err)
	})
}

func TestLogService_Activity(t *testing.T) {
	now := time.Date(2023, 6, 10, 8, 0, 0, 0, time.UTC)

	t.Run("monthly buckets fill a 12 month series", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().MonthlyActivity(gomock.Any()).
			Return([]repotypes.MonthBucket{{Month: 2, Count: 4}, {Month: 6, Count: 9}}, nil)

		chart, degraded, err := svc.Activity(context.Background(), "monthly")
		require.NoError(t, err)
		assert.Empty(t, degraded)

		assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, chart.Labels)
		data := chart.Datasets[0].Data
		assert.Equal(t, int64(4), data[1])
		assert.Equal(t, int64(9), data[5])
	})

	t.Run("monthly failure places total in current month", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().MonthlyActivity(gomock.Any()).
			Return(nil, errors.New("db error"))
		mockRepo.EXPECT().Count(gomock.Any(), repotypes.LogFilter{}).
			Return(int64(77), nil)

		chart, degraded, err := svc.Activity(context.Background(), "monthly")
		require.NoError(t, err)
		require.Len(t, degraded, 1)

		data := chart.Datasets[0].Data
		assert.Equal(t, int64(77), data[5]) // June
	})

	t.Run("unknown period is rejected", func(t *testing.T) {
		svc, _ := newLogService(t, now)

		_, _, err := svc.Activity(context.Background(), "weekly")
		assert.ErrorIs(t, err, service.ErrInvalidPeriod)
	})
}

func TestLogService_Tags(t *testing.T) {
	now := time.Now()

	t.Run("passes sorted distinct tags through", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().DistinctTags(gomock.Any()).
			Return([]string{"auth", "net"}, nil)

		tags, err := svc.Tags(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"auth", "net"}, tags)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		mockRepo.EXPECT().DistinctTags(gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Tags(context.Background())
		assert.Error(t, err)
	})
}

func TestLogService_Filtered(t *testing.T) {
	now := time.Now()

	t.Run("invalid start bound is a validation error", func(t *testing.T) {
		svc, _ := newLogService(t, now)

		_, err := svc.Filtered(context.Background(), service.FilterParams{Start: "not-a-date"})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("builds the filter and maps views", func(t *testing.T) {
		svc, mockRepo := newLogService(t, now)

		ts := time.Date(2023, 12, 15, 10, 30, 45, 0, time.UTC)
		mockRepo.EXPECT().
			Find(gomock.Any(), repotypes.LogFilter{
				UserID:      "alice",
				Levels:      []string{"error"},
				Tags:        []string{"auth"},
				PackageName: "com.example.app",
				From:        time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			}).
			Return([]domain.LogEntry{
				{ID: 5, UserID: "alice", Level: "error", Message: "denied", Timestamp: timePtr(ts)},
			}, nil)

		views, err := svc.Filtered(context.Background(), service.FilterParams{
			UserID:      "alice",
			Level:       "error",
			Tag:         "auth",
			PackageName: "com.example.app",
			Start:       "2023-12-15T00:00:00Z",
		})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "log_5", views[0].ID)
		assert.Equal(t, "2023-12-15T10:30:45Z", views[0].Timestamp)
	})
}
