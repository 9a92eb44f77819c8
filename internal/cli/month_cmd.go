package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ykohira/worktime/internal/domain"
)

func newMonthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show the monthly summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}

			monthArg := ""
			if len(args) == 1 {
				monthArg = args[0]
			}
			month, err := parseMonth(monthArg)
			if err != nil {
				return err
			}

			account, err := app.Accounts.Get(ctx, accountID)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, accountID)
			if err != nil {
				return err
			}
			summary, err := app.Logs.MonthlyAggregate(ctx, accountID, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", month.Format("2006-01"), account.DisplayName())
			fmt.Fprintf(out, "Total:  %.2fh  (target %.0f-%.0fh)\n", summary.TotalHours, settings.MinHours, settings.MaxHours)
			fmt.Fprintf(out, "Days:   %d active, %d office\n", summary.ActiveDays, summary.OfficeDays)
			fmt.Fprintf(out, "%s\n", progressBar(summary.TotalHours, settings.MaxHours, 30))

			for _, d := range summary.Daily {
				if d.Hours == 0 {
					continue
				}
				fmt.Fprintf(out, "  %02d  %5.2fh  %s\n", d.Day, d.Hours, strings.Repeat("#", int(d.Hours+0.5)))
			}
			return nil
		},
	}
	return cmd
}

// progressBar renders the capped target-band indicator.
func progressBar(total, maxHours float64, width int) string {
	filled := int(domain.ProgressFraction(total, maxHours) * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
