// internal/tui/app.go
//
// Interactive schedule viewer built on bubbletea (The Elm Architecture:
// Model -> Update -> View). The left pane lists every task; the detail pane
// shows the selected task's timing attributes and its timeline bar. The
// viewer is strictly read-only over an already-computed schedule.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dragjon/elixir-cpm/internal/report"
	"github.com/Dragjon/elixir-cpm/internal/schedule"
)

var (
	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	detailTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	criticalTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	slackTagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	paneStyle        = lipgloss.NewStyle().Padding(0, 1)
)

// taskItem implements list.Item for one scheduled task.
type taskItem struct {
	task *schedule.Task
}

func (i taskItem) Title() string {
	if i.task.Critical {
		return fmt.Sprintf("%s  %s", i.task.ID, criticalTagStyle.Render("critical"))
	}
	return i.task.ID
}

func (i taskItem) Description() string {
	return fmt.Sprintf("runs %d-%d · duration %d · slack %d", i.task.ES, i.task.EF, i.task.Duration, i.task.Slack)
}

func (i taskItem) FilterValue() string { return i.task.ID }

// App is the viewer model: the schedule plus the list component state.
type App struct {
	schedule *schedule.Schedule
	tasks    list.Model

	width  int
	height int
}

// NewApp builds the viewer over a computed schedule.
func NewApp(s *schedule.Schedule) *App {
	items := make([]list.Item, 0, len(s.Tasks()))
	for _, t := range s.Tasks() {
		items = append(items, taskItem{task: t})
	}

	tasks := list.New(items, list.NewDefaultDelegate(), 0, 0)
	tasks.Title = fmt.Sprintf("⚗ ELIXIR — %d tasks, horizon %d", len(items), s.Horizon)
	tasks.SetShowStatusBar(false)
	tasks.SetFilteringEnabled(false)

	return &App{schedule: s, tasks: tasks}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		// Leave room for the detail pane below the list.
		a.tasks.SetSize(m.Width, m.Height-detailHeight)
		return a, nil

	case tea.KeyMsg:
		switch m.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.tasks, cmd = a.tasks.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.tasks.View(),
		paneStyle.Render(a.detailView()),
	)
}

func (a *App) detailView() string {
	item, ok := a.tasks.SelectedItem().(taskItem)
	if !ok {
		return detailTextStyle.Render("no task selected")
	}
	t := item.task

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(t.ID))
	if t.Critical {
		b.WriteString("  " + criticalTagStyle.Render("on the critical path"))
	} else {
		b.WriteString("  " + slackTagStyle.Render(fmt.Sprintf("slack %d", t.Slack)))
	}
	b.WriteString("\n")
	b.WriteString(detailTextStyle.Render(
		fmt.Sprintf("ES %d · EF %d · LS %d · LF %d · duration %d", t.ES, t.EF, t.LS, t.LF, t.Duration)))
	b.WriteString("\n")
	if len(t.Deps) > 0 {
		b.WriteString(detailTextStyle.Render("waits on: "+strings.Join(t.Deps, ", ")) + "\n")
	}
	if len(t.Succs) > 0 {
		b.WriteString(detailTextStyle.Render("unblocks: "+strings.Join(t.Succs, ", ")) + "\n")
	}
	b.WriteString(report.RenderBar(a.schedule, t))
	b.WriteString("\n" + detailTextStyle.Render("↑/↓ select · q quit"))
	return b.String()
}

// Room reserved under the list for the detail pane: title, attributes,
// deps, succs, bar, help, padding.
const detailHeight = 8

// Run computes nothing; it just opens the viewer and blocks until quit.
func Run(s *schedule.Schedule) error {
	p := tea.NewProgram(NewApp(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
