package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ykohira/worktime/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Accounts service.AccountService
	Logs     service.LogService
	Settings service.SettingsService
	Exports  service.ExportService

	// IsInteractive reports whether stdin is a terminal; when it is and
	// no subcommand was given, the TUI is launched instead of help.
	IsInteractive func() bool
	// RunTUI starts the interactive dashboard. Wired by main to avoid a
	// package cycle with the TUI.
	RunTUI func() error

	// accountFlag is the value of the persistent --account flag.
	accountFlag string
}

// NewRootCmd creates the top-level "worktime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "worktime",
		Short: "Track daily working hours per project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunTUI != nil && app.IsInteractive != nil && app.IsInteractive() {
				return app.RunTUI()
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&app.accountFlag, "account", "a", "", "account name or ID (defaults to the current account)")

	root.AddCommand(
		newLogCmd(app),
		newRemoveCmd(app),
		newMonthCmd(app),
		newAccountCmd(app),
		newSettingsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

// selectedAccount resolves the persistent --account flag, falling back to
// the current account.
func selectedAccount(ctx context.Context, app *App) (string, error) {
	return resolveAccount(ctx, app, app.accountFlag)
}

// resolveAccount matches input against account names, IDs, and unambiguous
// ID prefixes. Empty input means the current account.
func resolveAccount(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		current, err := app.Accounts.Current(ctx)
		if err != nil {
			return "", err
		}
		return current.ID, nil
	}

	accounts, err := app.Accounts.List(ctx)
	if err != nil {
		return "", err
	}

	for _, a := range accounts {
		if strings.EqualFold(a.Name, input) {
			return a.ID, nil
		}
	}
	for _, a := range accounts {
		if a.ID == input {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range accounts {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("account not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("account %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseMonth parses a YYYY-MM argument, defaulting to the current month.
func parseMonth(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return t, nil
}
