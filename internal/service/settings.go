package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/logtrail/logtrail/internal/domain"
	"github.com/logtrail/logtrail/internal/repo"
	errorsUtils "github.com/logtrail/logtrail/pkg/errors"
)

var (
	defaultRetention = domain.RetentionSettings{
		RetentionPeriod:   "30 days",
		AutoDeleteOldLogs: true,
	}
	defaultLiveConsole = domain.LiveConsoleSettings{
		AutoRefreshInterval: "10s",
		MaxLogsToDisplay:    "100",
	}

	validRetentionPeriods = []string{"7 days", "30 days", "90 days"}
	validRefreshIntervals = []string{"5s", "10s", "30s"}
	validMaxLogs          = []string{"100", "500", "1000"}
)

type SettingsService struct {
	settingsRepo repo.Settings
}

func NewSettingsService(sr repo.Settings) *SettingsService {
	return &SettingsService{settingsRepo: sr}
}

// Retention returns the retention settings, writing the defaults on first
// read so the document exists afterwards.
func (s *SettingsService) Retention(ctx context.Context) (domain.RetentionSettings, error) {
	settings := defaultRetention

	found, err := s.load(ctx, domain.SettingsTypeRetention, &settings)
	if err != nil {
		return domain.RetentionSettings{}, err
	}
	if !found {
		if err := s.store(ctx, domain.SettingsTypeRetention, settings); err != nil {
			return domain.RetentionSettings{}, err
		}
	}
	return settings, nil
}

func (s *SettingsService) UpdateRetention(ctx context.Context, settings domain.RetentionSettings) (domain.RetentionSettings, error) {
	if !contains(validRetentionPeriods, settings.RetentionPeriod) {
		return domain.RetentionSettings{}, fmt.Errorf(
			"%w: invalid retention period, must be one of %v", ErrValidation, validRetentionPeriods)
	}

	if err := s.store(ctx, domain.SettingsTypeRetention, settings); err != nil {
		return domain.RetentionSettings{}, err
	}
	return settings, nil
}

// LiveConsole returns the live-console settings, writing the defaults on
// first read.
func (s *SettingsService) LiveConsole(ctx context.Context) (domain.LiveConsoleSettings, error) {
	settings := defaultLiveConsole

	found, err := s.load(ctx, domain.SettingsTypeLiveConsole, &settings)
	if err != nil {
		return domain.LiveConsoleSettings{}, err
	}
	if !found {
		if err := s.store(ctx, domain.SettingsTypeLiveConsole, settings); err != nil {
			return domain.LiveConsoleSettings{}, err
		}
	}
	return settings, nil
}

func (s *SettingsService) UpdateLiveConsole(ctx context.Context, settings domain.LiveConsoleSettings) (domain.LiveConsoleSettings, error) {
	if !contains(validRefreshIntervals, settings.AutoRefreshInterval) {
		return domain.LiveConsoleSettings{}, fmt.Errorf(
			"%w: invalid auto refresh interval, must be one of %v", ErrValidation, validRefreshIntervals)
	}
	if !contains(validMaxLogs, settings.MaxLogsToDisplay) {
		return domain.LiveConsoleSettings{}, fmt.Errorf(
			"%w: invalid max logs to display, must be one of %v", ErrValidation, validMaxLogs)
	}

	if err := s.store(ctx, domain.SettingsTypeLiveConsole, settings); err != nil {
		return domain.LiveConsoleSettings{}, err
	}
	return settings, nil
}

// load unmarshals the stored payload over dest, keeping dest's defaults for
// any keys the document lacks.
func (s *SettingsService) load(ctx context.Context, settingsType string, dest any) (bool, error) {
	payload, found, err := s.settingsRepo.Get(ctx, settingsType)
	if err != nil {
		return false, errorsUtils.WrapPathErr(err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, errorsUtils.WrapPathErr(err)
	}
	return true, nil
}

func (s *SettingsService) store(ctx context.Context, settingsType string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err := s.settingsRepo.Upsert(ctx, settingsType, payload); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
