package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/acarvalho/pausas/internal/domain"
)

// currentWorkspace returns the last-opened workspace. Every command
// except "workspace use" operates on it.
func currentWorkspace(ctx context.Context, app *App) (*domain.Workspace, error) {
	ws, err := app.Workspaces.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("no workspace selected, run 'pausas workspace use NAME' first")
	}
	return ws, nil
}

// resolveEmployeeID matches input against the roster: exact name
// (case-insensitive), exact ID, then ID prefix.
func resolveEmployeeID(ctx context.Context, app *App, workspaceID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("employee name or ID is required")
	}

	roster, err := app.Employees.List(ctx, workspaceID)
	if err != nil {
		return "", err
	}

	for _, e := range roster {
		if strings.EqualFold(e.Name, input) {
			return e.ID, nil
		}
	}

	for _, e := range roster {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range roster {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("employee not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("employee %q is ambiguous (%d matches)", input, len(matches))
	}
}
