package cli

import (
	"context"
	"fmt"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var employee, breakType, from, to, status string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate statistics, charts and the employee ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			f, err := parseRecordFilter(ctx, app, ws.ID, employee, breakType, from, to, status)
			if err != nil {
				return err
			}

			rep, err := app.Reports.Build(ctx, ws.ID, f)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatReport(rep))
			return nil
		},
	}

	addFilterFlags(cmd, &employee, &breakType, &from, &to, &status)

	return cmd
}
