package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Record a net-worth snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Snapshotter.Record(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("snapshot recorded at %s: net worth %s%s\n",
				snap.TakenAt.Format("2006-01-02 15:04"), app.Config.UI.CurrencySymbol, snap.NetWorth.StringFixed(2))
			return nil
		},
	}
}

func newSnapshotsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots",
		Short: "Show net-worth history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, err := app.Snapshotter.History(cmd.Context())
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Println("no snapshots yet; run `networth snapshot` to record one")
				return nil
			}
			sym := app.Config.UI.CurrencySymbol
			fmt.Printf("%-17s %14s %14s %14s\n", "TAKEN", "ASSETS", "LIABILITIES", "NET WORTH")
			for _, s := range snaps {
				fmt.Printf("%-17s %s%13s %s%13s %s%13s\n",
					s.TakenAt.Format("2006-01-02 15:04"),
					sym, s.Assets.StringFixed(2),
					sym, s.Liabilities.StringFixed(2),
					sym, s.NetWorth.StringFixed(2))
			}
			return nil
		},
	}
}
