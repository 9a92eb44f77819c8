package service

import (
	"context"
	"errors"
	"time"

	"github.com/ykohira/worktime/internal/domain"
)

// ErrNotFound reports a lookup against an account that does not exist.
var ErrNotFound = errors.New("not found")

// ErrLastAccount reports an attempt to delete the only remaining account.
// The registry must always keep a selectable current account.
var ErrLastAccount = errors.New("cannot delete the last remaining account")

type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, name string) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	Current(ctx context.Context) (*domain.Account, error)
	Switch(ctx context.Context, id string) (*domain.Account, error)
}

type LogService interface {
	Book(ctx context.Context, accountID string) (domain.LogBook, error)
	Upsert(ctx context.Context, accountID, dateKey, start, end string, breakMinutes int, isOffice bool) (*domain.LogEntry, error)
	Remove(ctx context.Context, accountID, dateKey string) error
	Replace(ctx context.Context, accountID string, book domain.LogBook) error
	MonthlyAggregate(ctx context.Context, accountID string, month time.Time) (domain.MonthlySummary, error)
}

type SettingsService interface {
	Get(ctx context.Context, accountID string) (domain.Settings, error)
	Put(ctx context.Context, accountID string, s domain.Settings) error
}

type ExportService interface {
	// CSV renders the month sheet and returns it with its download name.
	CSV(ctx context.Context, accountID string, month time.Time) ([]byte, string, error)
	// JSON renders the full backup document with its download name.
	JSON(ctx context.Context, accountID string) ([]byte, string, error)
	// Import applies a parsed JSON backup to the account. Malformed input
	// fails without mutating any state.
	Import(ctx context.Context, accountID string, data []byte) error
}
