package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Bathroom key.Binding
	Coffee   key.Binding
	End      key.Binding
	Quit     key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Bathroom: key.NewBinding(key.WithKeys("b")),
		Coffee:   key.NewBinding(key.WithKeys("c")),
		End:      key.NewBinding(key.WithKeys("enter", "e")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// boardRow pairs a roster employee with their active break, if any.
type boardRow struct {
	employee *domain.Employee
	active   *domain.BreakRecord
}

type boardTickMsg time.Time

type boardDataMsg struct {
	rows     []boardRow
	settings *domain.Settings
	err      error
}

// boardModel is the live floor view: one card per employee with a
// ticking elapsed counter, driven by a 1-second tick.
type boardModel struct {
	app       *App
	workspace *domain.Workspace
	keys      boardKeyMap

	rows     []boardRow
	settings *domain.Settings
	cursor   int
	now      time.Time
	err      error
}

func newBoardModel(app *App, workspace *domain.Workspace) boardModel {
	return boardModel{
		app:       app,
		workspace: workspace,
		keys:      defaultBoardKeyMap(),
		now:       time.Now(),
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadData(), boardTick())
}

func boardTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return boardTickMsg(t)
	})
}

func (m boardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		roster, err := m.app.Employees.List(ctx, m.workspace.ID)
		if err != nil {
			return boardDataMsg{err: err}
		}
		settings, err := m.app.Settings.Get(ctx, m.workspace.ID)
		if err != nil {
			return boardDataMsg{err: err}
		}

		rows := make([]boardRow, 0, len(roster))
		for _, e := range roster {
			active, err := m.app.Breaks.ActiveFor(ctx, m.workspace.ID, e.ID)
			if err != nil {
				return boardDataMsg{err: err}
			}
			rows = append(rows, boardRow{employee: e, active: active})
		}
		return boardDataMsg{rows: rows, settings: settings}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardTickMsg:
		m.now = time.Time(msg)
		return m, boardTick()

	case boardDataMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rows = msg.rows
		m.settings = msg.settings
		m.err = nil
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Bathroom):
			return m, m.startBreak(domain.BreakBathroom)
		case key.Matches(msg, m.keys.Coffee):
			return m, m.startBreak(domain.BreakCoffee)
		case key.Matches(msg, m.keys.End):
			return m, m.endBreak()
		}
	}
	return m, nil
}

func (m *boardModel) selected() *boardRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

func (m boardModel) startBreak(bt domain.BreakType) tea.Cmd {
	row := m.selected()
	if row == nil {
		return nil
	}
	id := row.employee.ID
	return func() tea.Msg {
		_, err := m.app.Breaks.Open(context.Background(), m.workspace.ID, id, bt)
		if err != nil && !errors.Is(err, service.ErrAlreadyOnBreak) {
			return boardDataMsg{err: err}
		}
		return m.loadData()()
	}
}

func (m boardModel) endBreak() tea.Cmd {
	row := m.selected()
	if row == nil {
		return nil
	}
	id := row.employee.ID
	return func() tea.Msg {
		_, err := m.app.Breaks.Close(context.Background(), m.workspace.ID, id)
		if err != nil && !errors.Is(err, service.ErrNoActiveBreak) {
			return boardDataMsg{err: err}
		}
		return m.loadData()()
	}
}

var (
	boardCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 2).
			Width(34)
	boardCardFocus = boardCardStyle.
			BorderForeground(formatter.ColorHeader)
)

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(m.workspace.Name + " — floor board"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(formatter.Dim("No employees. Add some with 'pausas employee add'.") + "\n")
	}

	for i, row := range m.rows {
		style := boardCardStyle
		if i == m.cursor {
			style = boardCardFocus
		}
		b.WriteString(style.Render(m.renderCard(row)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ select · b bathroom · c coffee · enter end break · q quit"))
	return b.String()
}

func (m boardModel) renderCard(row boardRow) string {
	name := formatter.Bold(row.employee.Name)
	if row.active == nil {
		return fmt.Sprintf("%s\n%s", name, formatter.StyleGreen.Render("● available"))
	}

	elapsed := formatter.Elapsed(row.active.StartTime, m.now)
	line := fmt.Sprintf("%s  %s", formatter.BreakTypeLabel(row.active.Type), elapsed)

	// Color the timer once the elapsed time passes the break limit.
	if m.settings != nil {
		limit := time.Duration(m.settings.LimitFor(row.active.Type)) * time.Minute
		if m.now.Sub(row.active.StartTime) > limit {
			line = fmt.Sprintf("%s  %s", formatter.BreakTypeLabel(row.active.Type),
				formatter.StyleRed.Render(elapsed))
		}
	}
	return fmt.Sprintf("%s\n%s", name, line)
}
