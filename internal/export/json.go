package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ykohira/worktime/internal/domain"
)

// Backup is the JSON export envelope for one account.
type Backup struct {
	Logs      domain.LogBook   `json:"logs"`
	Settings  *domain.Settings `json:"settings,omitempty"`
	AccountID string           `json:"accountId"`
}

// JSONBackup renders the full backup document, pretty-printed for human
// inspection.
func JSONBackup(book domain.LogBook, settings domain.Settings, accountID string) ([]byte, error) {
	if book == nil {
		book = domain.LogBook{}
	}
	data, err := json.MarshalIndent(Backup{Logs: book, Settings: &settings, AccountID: accountID}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// JSONFilename names a user-initiated JSON download taken at now.
func JSONFilename(now time.Time) string {
	return fmt.Sprintf("backup_%s.json", now.Format("20060102"))
}

// ParseBackup parses and validates an import payload without touching any
// state; callers apply the result only after a nil error. Entry durations
// are recomputed from start/end/break so the derived-value invariant holds
// regardless of what the file claims.
func ParseBackup(data []byte) (*Backup, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}

	var errs []error
	for key, entry := range b.Logs {
		if _, err := domain.ParseDateKey(key); err != nil {
			errs = append(errs, err)
			continue
		}
		if entry.BreakMinutes < 0 {
			errs = append(errs, fmt.Errorf("entry %s: negative break minutes", key))
			continue
		}
		if entry.Start != "" && !domain.ValidClock(entry.Start) {
			errs = append(errs, fmt.Errorf("entry %s: invalid start time %q", key, entry.Start))
			continue
		}
		if entry.End != "" && !domain.ValidClock(entry.End) {
			errs = append(errs, fmt.Errorf("entry %s: invalid end time %q", key, entry.End))
			continue
		}
		entry.Duration = domain.ComputeDuration(entry.Start, entry.End, entry.BreakMinutes)
		b.Logs[key] = entry
	}

	// Settings validation mirrors settingsService.Put: anything the apply
	// step would reject must already fail here, or the log book could be
	// replaced before the settings write errors out.
	if b.Settings != nil {
		if b.Settings.DefaultStart != "" && !domain.ValidClock(b.Settings.DefaultStart) {
			errs = append(errs, fmt.Errorf("settings: invalid default start time %q", b.Settings.DefaultStart))
		}
		if b.Settings.DefaultEnd != "" && !domain.ValidClock(b.Settings.DefaultEnd) {
			errs = append(errs, fmt.Errorf("settings: invalid default end time %q", b.Settings.DefaultEnd))
		}
		if b.Settings.DefaultBreak < 0 {
			errs = append(errs, errors.New("settings: negative default break"))
		}
		if b.Settings.MinHours < 0 || b.Settings.MaxHours < 0 {
			errs = append(errs, errors.New("settings: negative target hours"))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid backup: %w", errors.Join(errs...))
	}
	return &b, nil
}
