package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/domain"
	"github.com/ykohira/worktime/internal/export"
	"github.com/ykohira/worktime/internal/store"
)

type logService struct {
	sync     *store.Syncer
	accounts AccountService
	holiday  calendar.HolidayFunc
}

// NewLogService creates the per-account log book service. Every log
// mutation also regenerates the account's CSV backup in the durable tier
// as a best-effort side effect.
func NewLogService(syncer *store.Syncer, accounts AccountService, holiday calendar.HolidayFunc) LogService {
	if holiday == nil {
		holiday = calendar.NoHolidays
	}
	return &logService{sync: syncer, accounts: accounts, holiday: holiday}
}

func (s *logService) Book(ctx context.Context, accountID string) (domain.LogBook, error) {
	book := domain.LogBook{}
	if _, err := s.sync.LoadJSON(ctx, store.LogsResource(accountID), &book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *logService) Upsert(ctx context.Context, accountID, dateKey, start, end string, breakMinutes int, isOffice bool) (*domain.LogEntry, error) {
	day, err := domain.ParseDateKey(dateKey)
	if err != nil {
		return nil, err
	}
	if breakMinutes < 0 {
		return nil, fmt.Errorf("break minutes must not be negative")
	}

	book, err := s.Book(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entry := domain.NewLogEntry(start, end, breakMinutes, isOffice)
	book[dateKey] = entry
	if err := s.save(ctx, accountID, book, day); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *logService) Remove(ctx context.Context, accountID, dateKey string) error {
	day, err := domain.ParseDateKey(dateKey)
	if err != nil {
		return err
	}

	book, err := s.Book(ctx, accountID)
	if err != nil {
		return err
	}
	if _, ok := book[dateKey]; !ok {
		return nil // idempotent
	}
	delete(book, dateKey)
	return s.save(ctx, accountID, book, day)
}

func (s *logService) Replace(ctx context.Context, accountID string, book domain.LogBook) error {
	if book == nil {
		book = domain.LogBook{}
	}
	return s.save(ctx, accountID, book, time.Now())
}

func (s *logService) MonthlyAggregate(ctx context.Context, accountID string, month time.Time) (domain.MonthlySummary, error) {
	book, err := s.Book(ctx, accountID)
	if err != nil {
		return domain.MonthlySummary{}, err
	}
	return book.MonthlyAggregate(month), nil
}

// save persists the book and queues the CSV backup for the month the
// mutation touched. The backup write never blocks or fails the save.
func (s *logService) save(ctx context.Context, accountID string, book domain.LogBook, month time.Time) error {
	if err := s.sync.SaveJSON(ctx, store.LogsResource(accountID), book); err != nil {
		return err
	}

	name := "Account"
	if account, err := s.accounts.Get(ctx, accountID); err == nil {
		name = account.DisplayName()
	}
	csv := export.CSV(book, month, name, s.holiday)
	s.sync.SaveBackup(ctx, store.BackupResource(accountID), csv)
	return nil
}
