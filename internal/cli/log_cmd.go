package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ykohira/worktime/internal/domain"
)

func newLogCmd(app *App) *cobra.Command {
	var start, end string
	var breakMin int
	var office bool

	cmd := &cobra.Command{
		Use:   "log [date]",
		Short: "Record working hours for a day",
		Long: `Record start/end times and break for a calendar day (default today).
Times not given fall back to the account's default settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}

			dateKey := domain.DateKey(time.Now())
			if len(args) == 1 {
				dateKey = args[0]
			}

			settings, err := app.Settings.Get(ctx, accountID)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("start") {
				start = settings.DefaultStart
			}
			if !cmd.Flags().Changed("end") {
				end = settings.DefaultEnd
			}
			if !cmd.Flags().Changed("break") {
				breakMin = settings.DefaultBreak
			}

			entry, err := app.Logs.Upsert(ctx, accountID, dateKey, start, end, breakMin, office)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %s-%s, break %dmin -> %.2fh\n",
				dateKey, entry.Start, entry.End, entry.BreakMinutes, entry.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "break in minutes")
	cmd.Flags().BoolVar(&office, "office", false, "mark the day as office attendance")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <date>",
		Short: "Delete the log entry for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}
			if err := app.Logs.Remove(ctx, accountID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
