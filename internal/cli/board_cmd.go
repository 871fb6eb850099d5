package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Live floor board with ticking break timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("the board needs an interactive terminal")
			}

			ws, err := currentWorkspace(context.Background(), app)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(newBoardModel(app, ws), tea.WithAltScreen()).Run()
			return err
		},
	}
}
