package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records for the account",
	}

	cmd.AddCommand(newExportCSVCmd(app), newExportJSONCmd(app))
	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var monthArg, output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the month sheet as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}
			month, err := parseMonth(monthArg)
			if err != nil {
				return err
			}

			data, filename, err := app.Exports.CSV(ctx, accountID, month)
			if err != nil {
				return err
			}
			if output != "" {
				filename = output
			}
			if err := os.WriteFile(filename, data, 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthArg, "month", "", "month to export (YYYY-MM, default current)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default the download name)")
	return cmd
}

func newExportJSONCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Write the full backup as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}

			data, filename, err := app.Exports.JSON(ctx, accountID)
			if err != nil {
				return err
			}
			if output != "" {
				filename = output
			}
			if err := os.WriteFile(filename, data, 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default the download name)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Restore logs and settings from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID, err := selectedAccount(ctx, app)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}
			if err := app.Exports.Import(ctx, accountID, data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Data restored")
			return nil
		},
	}
}
