package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts (projects/clients)",
	}

	cmd.AddCommand(
		newAccountAddCmd(app),
		newAccountListCmd(app),
		newAccountRemoveCmd(app),
	)

	return cmd
}

func newAccountAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new account and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.Accounts.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s)\n", account.Name, account.ID)
			return nil
		},
	}
}

func newAccountListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts in registry order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accounts, err := app.Accounts.List(ctx)
			if err != nil {
				return err
			}
			current, err := app.Accounts.Current(ctx)
			if err != nil {
				return err
			}
			for _, a := range accounts {
				marker := " "
				if a.ID == current.ID {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %s\n", marker, a.Name, a.ID)
			}
			return nil
		},
	}
}

func newAccountRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name|id>",
		Short: "Delete an account and all its data references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveAccount(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Accounts.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", args[0])
			return nil
		},
	}
}
