package cli

import (
	"context"
	"fmt"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/spf13/cobra"
)

func newBreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Clock breaks in and out",
	}

	cmd.AddCommand(
		newBreakStartCmd(app),
		newBreakEndCmd(app),
	)

	return cmd
}

func newBreakStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start EMPLOYEE TYPE",
		Short: "Start a bathroom or coffee break",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveEmployeeID(ctx, app, ws.ID, args[0])
			if err != nil {
				return err
			}
			bt, err := domain.ParseBreakType(args[1])
			if err != nil {
				return err
			}

			rec, err := app.Breaks.Open(ctx, ws.ID, id, bt)
			if err != nil {
				return err
			}
			fmt.Printf("%s out at %s\n", formatter.BreakTypeLabel(rec.Type), formatter.ClockStamp(rec.StartTime))
			return nil
		},
	}
}

func newBreakEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end EMPLOYEE",
		Short: "End the employee's active break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveEmployeeID(ctx, app, ws.ID, args[0])
			if err != nil {
				return err
			}

			rec, err := app.Breaks.Close(ctx, ws.ID, id)
			if err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, ws.ID)
			if err != nil {
				return err
			}
			dur, _ := rec.Duration()
			line := fmt.Sprintf("Back after %s", formatter.FormatDuration(dur))
			if rec.IsLate(settings) {
				line += " " + formatter.StyleRed.Render(fmt.Sprintf("(over the %dmin limit)", settings.LimitFor(rec.Type)))
			}
			fmt.Println(line)
			return nil
		},
	}
}
