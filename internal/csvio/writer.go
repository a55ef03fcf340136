package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Dragjon/elixir-cpm/internal/schedule"
)

// Symbols are the single-cell markers used in the timeline CSV.
type Symbols struct {
	Critical string
	Active   string
	Inactive string
}

// DefaultSymbols matches the historical timeline.csv encoding:
// C = critical task, X = active, O = inactive.
var DefaultSymbols = Symbols{Critical: "C", Active: "X", Inactive: "O"}

// WriteSchedule writes the per-task timing attributes:
//
//	task,duration,ES,EF,LS,LF,slack
func WriteSchedule(w io.Writer, s *schedule.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"task", "duration", "ES", "EF", "LS", "LF", "slack"}); err != nil {
		return fmt.Errorf("csvio: write schedule header: %w", err)
	}
	for _, t := range s.Tasks() {
		row := []string{
			t.ID,
			strconv.Itoa(t.Duration),
			strconv.Itoa(t.ES),
			strconv.Itoa(t.EF),
			strconv.Itoa(t.LS),
			strconv.Itoa(t.LF),
			strconv.Itoa(t.Slack),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvio: write schedule row %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTimeline writes the simplified Gantt view: one column per time unit,
// one row per task, cells encoded with the given symbols.
func WriteTimeline(w io.Writer, s *schedule.Schedule, symbols Symbols) error {
	if symbols == (Symbols{}) {
		symbols = DefaultSymbols
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, s.Horizon+1)
	header = append(header, "Task")
	for unit := 0; unit < s.Horizon; unit++ {
		header = append(header, strconv.Itoa(unit))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvio: write timeline header: %w", err)
	}

	for _, t := range s.Tasks() {
		row := make([]string, 0, s.Horizon+1)
		row = append(row, t.ID)
		for _, cell := range s.TimelineRow(t) {
			switch cell {
			case schedule.CellCritical:
				row = append(row, symbols.Critical)
			case schedule.CellActive:
				row = append(row, symbols.Active)
			default:
				row = append(row, symbols.Inactive)
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvio: write timeline row %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
