// Package csvio reads task lists and writes schedule results in the
// delimited formats the tool has always used: a tasks CSV in, a schedule
// CSV and a timeline CSV out. The CPM core never touches files itself.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Dragjon/elixir-cpm/internal/schedule"
)

// DefaultDepSeparator splits the dependency column into identifiers.
const DefaultDepSeparator = ";"

// Load parses a task CSV of the form:
//
//	task,duration,dependencies
//	a,2,
//	b,3,a
//	d,5,b;c
//
// The first row is a header and is skipped. The dependency column is
// optional and holds identifiers joined by depSeparator; empty means the
// task waits on nothing. Durations must be non-negative integers.
func Load(r io.Reader, depSeparator string) ([]schedule.Input, error) {
	if depSeparator == "" {
		depSeparator = DefaultDepSeparator
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may omit the dependency column
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: read tasks: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csvio: empty input, expected a header row")
	}

	inputs := make([]schedule.Input, 0, len(records)-1)
	for n, row := range records[1:] {
		line := n + 2 // 1-based, counting the header
		if len(row) < 2 {
			return nil, fmt.Errorf("csvio: line %d: expected task,duration[,dependencies], got %d columns", line, len(row))
		}

		id := strings.TrimSpace(row[0])
		if id == "" {
			return nil, fmt.Errorf("csvio: line %d: task identifier is empty", line)
		}

		duration, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("csvio: line %d: duration %q is not an integer", line, row[1])
		}
		if duration < 0 {
			return nil, fmt.Errorf("csvio: line %d: duration must be non-negative, got %d", line, duration)
		}

		var deps []string
		if len(row) >= 3 {
			deps = splitDeps(row[2], depSeparator)
		}
		inputs = append(inputs, schedule.Input{ID: id, Duration: duration, Deps: deps})
	}
	return inputs, nil
}

// splitDeps splits the dependency column, dropping empty items so trailing
// separators are harmless.
func splitDeps(s, sep string) []string {
	var out []string
	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
