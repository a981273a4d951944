package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/networth/internal/tui"
)

func newImportCommand(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import accounts from a YNAB CSV export",
		Long: `Parse a Net Worth Report or Register CSV export, reconcile the rows
against existing accounts and commit the confirmed result. Without --yes an
interactive review screen opens for confirming fuzzy matches and excluding
rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			preview, err := app.Importer.Preview(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			fmt.Printf("detected %s export, %d accounts", preview.Result.Format, len(preview.Result.Accounts))
			if preview.Result.CollapsedDuplicates > 0 {
				fmt.Printf(" (%d duplicate rows collapsed)", preview.Result.CollapsedDuplicates)
			}
			fmt.Println()

			mappings := preview.Mappings
			if !yes {
				review := tui.NewReview(mappings, app.Config.Import.DefaultCurrency, app.Config.UI.CurrencySymbol)
				if _, err := tea.NewProgram(review).Run(); err != nil {
					return fmt.Errorf("review: %w", err)
				}
				if !review.Committed() {
					fmt.Println("import aborted")
					return nil
				}
				mappings = review.Mappings()
			}

			res, err := app.Importer.Commit(cmd.Context(), mappings)
			if err != nil {
				return err
			}
			fmt.Printf("imported: %d created, %d updated, %d skipped\n", res.Created, res.Updated, res.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "commit without interactive review (fails if fuzzy matches are unresolved)")
	return cmd
}
