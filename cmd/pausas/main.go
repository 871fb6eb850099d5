package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/acarvalho/pausas/internal/cli"
	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/repository"
	"github.com/acarvalho/pausas/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pausas/pausas.db
	dbPath := os.Getenv("PAUSAS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pausas", "pausas.db")
	}
	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	workspaceRepo := repository.NewSQLiteWorkspaceRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	metaRepo := repository.NewSQLiteMetaRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Workspaces: service.NewWorkspaceService(workspaceRepo, metaRepo, uow),
		Employees:  service.NewEmployeeService(employeeRepo, uow),
		Breaks:     service.NewBreakService(recordRepo, uow),
		Records:    service.NewRecordService(recordRepo, settingsRepo),
		Settings:   service.NewSettingsService(settingsRepo),
		Reports:    service.NewReportService(recordRepo, employeeRepo, settingsRepo),
		Backups:    service.NewBackupService(workspaceRepo, employeeRepo, recordRepo, settingsRepo, uow),
	}

	// Detect interactive terminal for forms and the live board.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
