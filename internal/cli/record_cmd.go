package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/report"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Inspect and edit break records",
	}

	cmd.AddCommand(
		newRecordListCmd(app),
		newRecordEditCmd(app),
		newRecordReturnCmd(app),
		newRecordRemoveCmd(app),
	)

	return cmd
}

// parseRecordFilter builds a report.Filter from the shared flag set.
func parseRecordFilter(ctx context.Context, app *App, workspaceID, employee, breakType, from, to, status string) (report.Filter, error) {
	var f report.Filter

	if employee != "" {
		id, err := resolveEmployeeID(ctx, app, workspaceID, employee)
		if err != nil {
			return f, err
		}
		f.EmployeeID = id
	}
	if breakType != "" {
		bt, err := domain.ParseBreakType(breakType)
		if err != nil {
			return f, err
		}
		f.Type = &bt
	}
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return f, fmt.Errorf("invalid from date %q: %w", from, err)
		}
		f.From = &t
	}
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return f, fmt.Errorf("invalid to date %q: %w", to, err)
		}
		f.To = &t
	}
	st, err := report.ParseStatus(status)
	if err != nil {
		return f, err
	}
	f.Status = st

	return f, nil
}

func addFilterFlags(cmd *cobra.Command, employee, breakType, from, to, status *string) {
	cmd.Flags().StringVar(employee, "employee", "", "Filter by employee name or ID")
	cmd.Flags().StringVar(breakType, "type", "", "Filter by break type (bathroom|coffee)")
	cmd.Flags().StringVar(from, "from", "", "Start date (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(to, "to", "", "End date (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(status, "status", "", "Filter by status (pending|completed|late)")
}

func newRecordListCmd(app *App) *cobra.Command {
	var employee, breakType, from, to, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List break records, most recent first",
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

			records, err := app.Records.List(ctx, ws.ID, f)
			if err != nil {
				return err
			}
			roster, err := app.Employees.List(ctx, ws.ID)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, ws.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatRecordList(records, roster, settings))
			return nil
		},
	}

	addFilterFlags(cmd, &employee, &breakType, &from, &to, &status)

	return cmd
}

func newRecordEditCmd(app *App) *cobra.Command {
	var employee, breakType, start, end string
	var clearEnd bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a record; without flags opens an interactive form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			rec, err := resolveRecord(ctx, app, ws.ID, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().NFlag() == 0 {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("no edit flags given and stdin is not a terminal")
				}
				return editRecordForm(ctx, app, ws.ID, rec)
			}

			if employee != "" {
				id, err := resolveEmployeeID(ctx, app, ws.ID, employee)
				if err != nil {
					return err
				}
				rec.EmployeeID = id
			}
			if breakType != "" {
				bt, err := domain.ParseBreakType(breakType)
				if err != nil {
					return err
				}
				rec.Type = bt
			}
			if start != "" {
				t, err := time.ParseInLocation(formTimestampLayout, start, time.Local)
				if err != nil {
					return fmt.Errorf("invalid out time %q: %w", start, err)
				}
				rec.StartTime = t
			}
			if clearEnd {
				rec.EndTime = nil
			} else if end != "" {
				t, err := time.ParseInLocation(formTimestampLayout, end, time.Local)
				if err != nil {
					return fmt.Errorf("invalid back time %q: %w", end, err)
				}
				rec.EndTime = &t
			}

			if err := app.Records.Update(ctx, rec); err != nil {
				return err
			}
			fmt.Println("Record updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Reassign to another employee")
	cmd.Flags().StringVar(&breakType, "type", "", "Break type (bathroom|coffee)")
	cmd.Flags().StringVar(&start, "out", "", "Out time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "back", "", "Back time (YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVar(&clearEnd, "reopen", false, "Clear the back time, marking the break active again")

	return cmd
}

// editRecordForm runs the interactive huh form and saves the result.
func editRecordForm(ctx context.Context, app *App, workspaceID string, rec *domain.BreakRecord) error {
	roster, err := app.Employees.List(ctx, workspaceID)
	if err != nil {
		return err
	}
	options := make([]huh.Option[string], 0, len(roster)+1)
	found := false
	for _, e := range roster {
		options = append(options, huh.NewOption(e.Name, e.ID))
		if e.ID == rec.EmployeeID {
			found = true
		}
	}
	if !found {
		options = append(options, huh.NewOption(formatter.RemovedLabel, rec.EmployeeID))
	}

	employeeID := rec.EmployeeID
	breakType := string(rec.Type)
	start := rec.StartTime.Local().Format(formTimestampLayout)
	end := ""
	if rec.EndTime != nil {
		end = rec.EndTime.Local().Format(formTimestampLayout)
	}

	if err := recordEditForm(&employeeID, &breakType, &start, &end, options).Run(); err != nil {
		return err
	}

	rec.EmployeeID = employeeID
	rec.Type = domain.BreakType(breakType)
	startTime, err := time.ParseInLocation(formTimestampLayout, strings.TrimSpace(start), time.Local)
	if err != nil {
		return fmt.Errorf("invalid out time %q: %w", start, err)
	}
	rec.StartTime = startTime
	rec.EndTime = nil
	if strings.TrimSpace(end) != "" {
		endTime, err := time.ParseInLocation(formTimestampLayout, strings.TrimSpace(end), time.Local)
		if err != nil {
			return fmt.Errorf("invalid back time %q: %w", end, err)
		}
		rec.EndTime = &endTime
	}

	if err := app.Records.Update(ctx, rec); err != nil {
		return err
	}
	fmt.Println("Record updated.")
	return nil
}

func newRecordReturnCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "return ID",
		Short: "Mark the return on a specific record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			rec, err := resolveRecord(ctx, app, ws.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Records.CloseByID(ctx, rec.ID); err != nil {
				return err
			}
			fmt.Println("Marked as returned.")
			return nil
		},
	}
}

func newRecordRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a break record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			rec, err := resolveRecord(ctx, app, ws.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Records.Delete(ctx, rec.ID); err != nil {
				return err
			}
			fmt.Println("Record deleted.")
			return nil
		},
	}
}

// resolveRecord matches input against workspace records: exact ID first,
// then unique ID prefix.
func resolveRecord(ctx context.Context, app *App, workspaceID, input string) (*domain.BreakRecord, error) {
	if input == "" {
		return nil, fmt.Errorf("record ID is required")
	}

	records, err := app.Records.List(ctx, workspaceID, report.Filter{})
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.ID == input {
			return r, nil
		}
	}

	var matches []*domain.BreakRecord
	for _, r := range records {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("record not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("record ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
