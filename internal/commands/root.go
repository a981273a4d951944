// Package commands wires the CLI.
package commands

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jask/networth/internal/config"
	"github.com/jask/networth/internal/database"
	"github.com/jask/networth/internal/database/repository"
	"github.com/jask/networth/internal/service"
)

// migrationsPath is resolved relative to the working directory, matching
// how the binary is run from the repo root.
const migrationsPath = "internal/database/migrations"

// App carries the wired repositories and services for subcommands.
type App struct {
	Config      config.Config
	DB          *sql.DB
	Accounts    *repository.AccountRepo
	Snapshots   *repository.SnapshotRepo
	Importer    *service.ImportService
	Snapshotter *service.SnapshotService
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:   "networth",
		Short: "Personal net-worth tracker",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}

	root.AddCommand(newImportCommand(app))
	root.AddCommand(newAccountsCommand(app))
	root.AddCommand(newNetWorthCommand(app))
	root.AddCommand(newSnapshotCommand(app))
	root.AddCommand(newSnapshotsCommand(app))

	return root
}

func (a *App) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.Config = cfg

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, migrationsPath); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	a.DB = db

	a.Accounts = repository.NewAccountRepo(db)
	a.Snapshots = repository.NewSnapshotRepo(db)
	a.Importer = &service.ImportService{
		Accounts: a.Accounts,
		Options: service.MatchOptions{
			FuzzyThreshold:  cfg.Import.FuzzyThreshold,
			DefaultCurrency: cfg.Import.DefaultCurrency,
		},
	}
	a.Snapshotter = &service.SnapshotService{Accounts: a.Accounts, Snapshots: a.Snapshots}
	return nil
}

func (a *App) close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
