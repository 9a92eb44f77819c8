package service

import (
	"context"
	"time"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/export"
)

type exportService struct {
	accounts AccountService
	logs     LogService
	settings SettingsService
	holiday  calendar.HolidayFunc
	now      func() time.Time
}

// NewExportService creates the serializer facade used for user-initiated
// downloads and restores.
func NewExportService(accounts AccountService, logs LogService, settings SettingsService, holiday calendar.HolidayFunc) ExportService {
	if holiday == nil {
		holiday = calendar.NoHolidays
	}
	return &exportService{
		accounts: accounts,
		logs:     logs,
		settings: settings,
		holiday:  holiday,
		now:      time.Now,
	}
}

func (s *exportService) CSV(ctx context.Context, accountID string, month time.Time) ([]byte, string, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	book, err := s.logs.Book(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	data := export.CSV(book, month, account.DisplayName(), s.holiday)
	return data, export.CSVFilename(account.DisplayName(), month), nil
}

func (s *exportService) JSON(ctx context.Context, accountID string) ([]byte, string, error) {
	book, err := s.logs.Book(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	settings, err := s.settings.Get(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	data, err := export.JSONBackup(book, settings, accountID)
	if err != nil {
		return nil, "", err
	}
	return data, export.JSONFilename(s.now()), nil
}

// Import parses the whole payload before applying anything, so malformed
// input can never leave the account half-mutated.
func (s *exportService) Import(ctx context.Context, accountID string, data []byte) error {
	parsed, err := export.ParseBackup(data)
	if err != nil {
		return err
	}

	if parsed.Logs != nil {
		if err := s.logs.Replace(ctx, accountID, parsed.Logs); err != nil {
			return err
		}
	}
	if parsed.Settings != nil {
		if err := s.settings.Put(ctx, accountID, *parsed.Settings); err != nil {
			return err
		}
	}
	return nil
}
