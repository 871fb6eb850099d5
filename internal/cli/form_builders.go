package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pausasHuhTheme styles huh forms with the gruvbox palette.
func pausasHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// workspaceNameForm collects a workspace name interactively.
func workspaceNameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workspace name").
				Placeholder("Front Office").
				Value(value).
				Validate(validateRequired("workspace name")),
		),
	).WithTheme(pausasHuhTheme()).WithShowHelp(false)
}

// recordEditForm edits a break record's fields. Timestamps are entered
// as local "2006-01-02 15:04"; a blank end leaves the break open.
func recordEditForm(employeeID, breakType, start, end *string, roster []huh.Option[string]) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Employee").
				Options(roster...).
				Value(employeeID),
			huh.NewSelect[string]().
				Title("Break type").
				Options(
					huh.NewOption("Bathroom", string(domain.BreakBathroom)),
					huh.NewOption("Coffee", string(domain.BreakCoffee)),
				).
				Value(breakType),
			huh.NewInput().
				Title("Out (YYYY-MM-DD HH:MM)").
				Value(start).
				Validate(validateTimestamp),
			huh.NewInput().
				Title("Back (blank to leave open)").
				Value(end).
				Validate(validateOptionalTimestamp),
		),
	).WithTheme(pausasHuhTheme()).WithShowHelp(false)
}

const formTimestampLayout = "2006-01-02 15:04"

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateTimestamp(s string) error {
	if _, err := time.ParseInLocation(formTimestampLayout, strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD HH:MM")
	}
	return nil
}

func validateOptionalTimestamp(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateTimestamp(s)
}
