package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	var start, end, color string
	var breakMin int
	var minHours, maxHours float64

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update the account's defaults and target band",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, accountID)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("start") {
				settings.DefaultStart = start
				changed = true
			}
			if cmd.Flags().Changed("end") {
				settings.DefaultEnd = end
				changed = true
			}
			if cmd.Flags().Changed("break") {
				settings.DefaultBreak = breakMin
				changed = true
			}
			if cmd.Flags().Changed("min") {
				settings.MinHours = minHours
				changed = true
			}
			if cmd.Flags().Changed("max") {
				settings.MaxHours = maxHours
				changed = true
			}
			if cmd.Flags().Changed("color") {
				settings.ThemeColor = color
				changed = true
			}

			if changed {
				if err := app.Settings.Put(ctx, accountID, settings); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Defaults: %s-%s, break %dmin\n", settings.DefaultStart, settings.DefaultEnd, settings.DefaultBreak)
			fmt.Fprintf(out, "Target:   %.0f-%.0fh/month\n", settings.MinHours, settings.MaxHours)
			fmt.Fprintf(out, "Theme:    %s\n", settings.ThemeColor)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "default start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "default end time (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "default break in minutes")
	cmd.Flags().Float64Var(&minHours, "min", 0, "monthly target minimum hours")
	cmd.Flags().Float64Var(&maxHours, "max", 0, "monthly target maximum hours")
	cmd.Flags().StringVar(&color, "color", "", "theme color")

	return cmd
}
