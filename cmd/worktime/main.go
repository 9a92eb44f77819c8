package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/cli"
	"github.com/ykohira/worktime/internal/config"
	"github.com/ykohira/worktime/internal/service"
	"github.com/ykohira/worktime/internal/store"
	"github.com/ykohira/worktime/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := newLogger()

	cfg, err := config.Init()
	if err != nil {
		return err
	}

	durable, closeStore, err := openDurable(cfg)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	syncer := store.NewSyncer(store.NewMemoryCache(), durable, logger)
	// All queued durable writes must land before the process exits.
	defer syncer.Flush()

	holiday := calendar.NoHolidays
	if cfg.Holidays {
		holiday = calendar.JapaneseHolidays
	}

	accounts := service.NewAccountService(syncer)
	logs := service.NewLogService(syncer, accounts, holiday)
	settings := service.NewSettingsService(syncer)
	exports := service.NewExportService(accounts, logs, settings, holiday)

	app := &cli.App{
		Accounts: accounts,
		Logs:     logs,
		Settings: settings,
		Exports:  exports,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.RunTUI = func() error {
		return tui.Run(tui.Services{
			Accounts: accounts,
			Logs:     logs,
			Settings: settings,
			Exports:  exports,
		}, holiday)
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger builds the process logger. Logs go to stderr so they never
// corrupt command output or the TUI. WORKTIME_DEBUG=1 enables debug level.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("WORKTIME_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openDurable creates the configured durable tier. A failure here is
// returned rather than degraded around: silently running cache-only would
// lose data on exit.
func openDurable(cfg *config.Config) (store.Durable, func() error, error) {
	dataDir, err := cfg.ResolvedDataDir()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		path, err := cfg.DBFile()
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return nil, nil, fmt.Errorf("creating data directory: %w", err)
		}
		s, err := store.NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		s, err := store.NewFileStore(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	}
}
