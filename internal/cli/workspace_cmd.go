package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWorkspaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Manage workspaces",
	}

	cmd.AddCommand(
		newWorkspaceUseCmd(app),
		newWorkspaceShowCmd(app),
		newWorkspaceListCmd(app),
		newWorkspaceClearDataCmd(app),
	)

	return cmd
}

func newWorkspaceUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use [NAME]",
		Short: "Switch to a workspace, creating it on first use",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("workspace name is required")
				}
				form := workspaceNameForm(&name)
				if err := form.Run(); err != nil {
					return err
				}
			}

			ws, err := app.Workspaces.Open(ctx, name)
			if err != nil {
				return err
			}
			fmt.Printf("Using workspace %s\n", formatter.Bold(ws.Name))
			return nil
		},
	}
}

func newWorkspaceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := currentWorkspace(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.Bold(ws.Name), formatter.Dim("("+ws.Key+")"))
			return nil
		},
	}
}

func newWorkspaceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := app.Workspaces.List(ctx)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No workspaces yet.")
				return nil
			}

			currentID := ""
			if cur, err := app.Workspaces.Current(ctx); err == nil {
				currentID = cur.ID
			}

			for _, ws := range list {
				marker := "  "
				if ws.ID == currentID {
					marker = formatter.StyleGreen.Render("➜ ")
				}
				fmt.Printf("%s%s %s\n", marker, ws.Name, formatter.Dim(ws.Key))
			}
			return nil
		},
	}
}

func newWorkspaceClearDataCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-data",
		Short: "Delete all employees and records of the current workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			if !yes {
				fmt.Printf("This deletes every employee and record in %s. Re-run with --yes to confirm.\n", ws.Name)
				return nil
			}

			if err := app.Workspaces.ClearData(ctx, ws.ID); err != nil {
				return err
			}
			fmt.Printf("Cleared all data in %s. Settings were kept.\n", ws.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation")

	return cmd
}

// trimmedArgs joins args into one name, for unquoted multi-word input.
func trimmedArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
