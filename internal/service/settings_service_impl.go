package service

import (
	"context"
	"fmt"

	"github.com/ykohira/worktime/internal/domain"
	"github.com/ykohira/worktime/internal/store"
)

type settingsService struct {
	sync *store.Syncer
}

// NewSettingsService creates the per-account settings service.
func NewSettingsService(syncer *store.Syncer) SettingsService {
	return &settingsService{sync: syncer}
}

// Get returns the account's settings. Unmarshalling over the defaults
// means a stored document missing newer fields still yields a complete
// value, and an account with no stored settings gets the defaults.
func (s *settingsService) Get(ctx context.Context, accountID string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if _, err := s.sync.LoadJSON(ctx, store.SettingsResource(accountID), &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *settingsService) Put(ctx context.Context, accountID string, settings domain.Settings) error {
	if settings.DefaultStart != "" && !domain.ValidClock(settings.DefaultStart) {
		return fmt.Errorf("invalid default start time %q", settings.DefaultStart)
	}
	if settings.DefaultEnd != "" && !domain.ValidClock(settings.DefaultEnd) {
		return fmt.Errorf("invalid default end time %q", settings.DefaultEnd)
	}
	if settings.DefaultBreak < 0 {
		return fmt.Errorf("default break must not be negative")
	}
	if settings.MinHours < 0 || settings.MaxHours < 0 {
		return fmt.Errorf("target hours must not be negative")
	}
	return s.sync.SaveJSON(ctx, store.SettingsResource(accountID), settings)
}
