// Package report renders the computed schedule for the terminal: a per-task
// attribute table and a bar-per-task timeline over the project horizon.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dragjon/elixir-cpm/internal/schedule"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

const (
	barCritical = "█"
	barActive   = "▓"
	barInactive = "·"
)

// PrintSchedule writes the per-task timing table followed by a summary line
// with the horizon and the critical chain.
func PrintSchedule(w io.Writer, s *schedule.Schedule) {
	idWidth := len("task")
	for _, t := range s.Tasks() {
		if len(t.ID) > idWidth {
			idWidth = len(t.ID)
		}
	}

	fmt.Fprintln(w, titleStyle.Render("Schedule"))
	fmt.Fprintf(w, "%s\n", headerStyle.Render(
		fmt.Sprintf("%-*s %8s %4s %4s %4s %4s %6s", idWidth, "task", "duration", "ES", "EF", "LS", "LF", "slack")))

	for _, t := range s.Tasks() {
		row := fmt.Sprintf("%-*s %8d %4d %4d %4d %4d %6d", idWidth, t.ID, t.Duration, t.ES, t.EF, t.LS, t.LF, t.Slack)
		if t.Critical {
			fmt.Fprintln(w, criticalStyle.Render(row))
		} else {
			fmt.Fprintln(w, row)
		}
	}

	fmt.Fprintf(w, "\n%s %d %s\n",
		dimStyle.Render("project horizon:"), s.Horizon, dimStyle.Render("time units"))
	if len(s.CriticalPath) > 0 {
		fmt.Fprintf(w, "%s %s\n",
			dimStyle.Render("critical path:"),
			criticalStyle.Render(strings.Join(s.CriticalPath, " -> ")))
	}
}

// PrintTimeline writes one bar per task across the horizon. Critical spans
// render solid, non-critical spans shaded, idle time as dots.
func PrintTimeline(w io.Writer, s *schedule.Schedule) {
	idWidth := 0
	for _, t := range s.Tasks() {
		if len(t.ID) > idWidth {
			idWidth = len(t.ID)
		}
	}

	fmt.Fprintln(w, titleStyle.Render("Timeline"))
	for _, t := range s.Tasks() {
		fmt.Fprintf(w, "%-*s %s\n", idWidth, t.ID, RenderBar(s, t))
	}
	fmt.Fprintf(w, "%-*s %s\n", idWidth, "", dimStyle.Render(axis(s.Horizon)))
}

// RenderBar returns one task's styled timeline bar.
func RenderBar(s *schedule.Schedule, t *schedule.Task) string {
	var b strings.Builder
	for _, cell := range s.TimelineRow(t) {
		switch cell {
		case schedule.CellCritical:
			b.WriteString(criticalStyle.Render(barCritical))
		case schedule.CellActive:
			b.WriteString(activeStyle.Render(barActive))
		default:
			b.WriteString(inactiveStyle.Render(barInactive))
		}
	}
	return b.String()
}

// axis labels every fifth time unit so bars stay readable on long projects.
func axis(horizon int) string {
	var b strings.Builder
	for unit := 0; unit < horizon; unit++ {
		if unit%5 == 0 {
			label := fmt.Sprintf("%d", unit)
			b.WriteString(label)
			unit += len(label) - 1
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
