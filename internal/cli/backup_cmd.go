package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/acarvalho/pausas/internal/backup"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore workspace snapshots",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
		newBackupCSVCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of the current workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			if out == "" {
				out = backup.FileName(ws.Name, time.Now())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating backup file: %w", err)
			}
			defer f.Close()

			if err := app.Backups.Export(ctx, ws.ID, f); err != nil {
				return err
			}
			fmt.Printf("Backup written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default backup_<workspace>_<date>.json)")

	return cmd
}

func newBackupImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore a JSON backup into the current workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening backup file: %w", err)
			}
			defer f.Close()

			res, err := app.Backups.Import(ctx, ws.ID, f)
			if err != nil {
				return err
			}
			fmt.Printf("Restored %d employees and %d records into %s\n",
				res.EmployeeCount, res.RecordCount, ws.Name)
			return nil
		},
	}
}

func newBackupCSVCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export break records as a semicolon-delimited CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			if out == "" {
				out = backup.CSVFileName(ws.Name, time.Now())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating csv file: %w", err)
			}
			defer f.Close()

			if err := app.Backups.ExportCSV(ctx, ws.ID, f); err != nil {
				return err
			}
			fmt.Printf("Records written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default registros_<workspace>_<date>.csv)")

	return cmd
}
