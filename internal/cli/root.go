package cli

import (
	"github.com/acarvalho/pausas/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workspaces service.WorkspaceService
	Employees  service.EmployeeService
	Breaks     service.BreakService
	Records    service.RecordService
	Settings   service.SettingsService
	Reports    service.ReportService
	Backups    service.BackupService

	// IsInteractive reports whether stdin is a terminal; interactive
	// prompts and the live board require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pausas" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pausas",
		Short: "Break tracking for small teams",
	}

	root.AddCommand(
		newWorkspaceCmd(app),
		newEmployeeCmd(app),
		newBreakCmd(app),
		newRecordCmd(app),
		newReportCmd(app),
		newSettingsCmd(app),
		newBackupCmd(app),
		newBoardCmd(app),
	)

	return root
}
