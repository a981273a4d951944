package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := app.Accounts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("no accounts yet; run `networth import <file>` to add some")
				return nil
			}
			fmt.Printf("%-30s %-22s %-11s %-4s %14s\n", "NAME", "CATEGORY", "ACCESS", "CUR", "BALANCE")
			for _, a := range accounts {
				fmt.Printf("%-30s %-22s %-11s %-4s %14s\n",
					a.Name, a.Category, a.AccessType, a.Currency, a.Balance.StringFixed(2))
			}
			return nil
		},
	}
}

func newNetWorthCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "networth",
		Short: "Show current net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Snapshotter.NetWorth(cmd.Context())
			if err != nil {
				return err
			}
			sym := app.Config.UI.CurrencySymbol
			fmt.Printf("assets:      %s%s\n", sym, t.Assets.StringFixed(2))
			fmt.Printf("liabilities: %s%s\n", sym, t.Liabilities.StringFixed(2))
			fmt.Printf("net worth:   %s%s\n", sym, t.NetWorth.StringFixed(2))
			return nil
		},
	}
}
