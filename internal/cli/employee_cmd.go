package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the roster",
	}

	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
		newEmployeeRenameCmd(app),
		newEmployeeRemoveCmd(app),
		newEmployeeMoveCmd(app),
	)

	return cmd
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add an employee to the roster",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			e, err := app.Employees.Add(ctx, ws.ID, trimmedArgs(args))
			if err != nil {
				return err
			}
			fmt.Printf("Added %s %s\n", formatter.Bold(e.Name), formatter.TruncID(e.ID))
			return nil
		},
	}
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster with break status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			roster, err := app.Employees.List(ctx, ws.ID)
			if err != nil {
				return err
			}
			if len(roster) == 0 {
				fmt.Println("No employees yet.")
				return nil
			}

			rows := make([][]string, 0, len(roster))
			for i, e := range roster {
				status := formatter.StyleGreen.Render("available")
				if active, err := app.Breaks.ActiveFor(ctx, ws.ID, e.ID); err == nil && active != nil {
					status = formatter.BreakTypeLabel(active.Type) +
						formatter.Dim(" since "+formatter.ClockStamp(active.StartTime))
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), e.Name, formatter.TruncID(e.ID), status})
			}
			fmt.Println(formatter.RenderTable([]string{"#", "Name", "ID", "Status"}, rows))
			return nil
		},
	}
}

func newEmployeeRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename EMPLOYEE NEW_NAME",
		Short: "Rename an employee",
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
			if err := app.Employees.Rename(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed to %s\n", formatter.Bold(args[1]))
			return nil
		},
	}
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EMPLOYEE",
		Short: "Remove an employee, keeping their break records",
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
			if err := app.Employees.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Println("Removed. Past records stay in the history.")
			return nil
		},
	}
}

func newEmployeeMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move an employee to another roster position (1-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}

			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			if err := app.Employees.Reorder(ctx, ws.ID, from-1, to-1); err != nil {
				return err
			}
			fmt.Printf("Moved position %d to %d\n", from, to)
			return nil
		},
	}
}
