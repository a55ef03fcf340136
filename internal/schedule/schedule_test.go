package schedule

import (
	"errors"
	"testing"
)

func mustCompute(t *testing.T, inputs []Input) *Schedule {
	t.Helper()
	s, err := Compute(inputs)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return s
}

func assertTiming(t *testing.T, s *Schedule, id string, es, ef, ls, lf, slack int) {
	t.Helper()
	task, ok := s.Task(id)
	if !ok {
		t.Fatalf("task %q missing from schedule", id)
	}
	if task.ES != es {
		t.Errorf("task %s: expected ES=%d, got %d", id, es, task.ES)
	}
	if task.EF != ef {
		t.Errorf("task %s: expected EF=%d, got %d", id, ef, task.EF)
	}
	if task.LS != ls {
		t.Errorf("task %s: expected LS=%d, got %d", id, ls, task.LS)
	}
	if task.LF != lf {
		t.Errorf("task %s: expected LF=%d, got %d", id, lf, task.LF)
	}
	if task.Slack != slack {
		t.Errorf("task %s: expected slack=%d, got %d", id, slack, task.Slack)
	}
	if task.Critical != (slack == 0) {
		t.Errorf("task %s: expected critical=%v, got %v", id, slack == 0, task.Critical)
	}
}

// The worked example from the original tasks.csv: a diamond with one slow and
// one fast middle branch.
func diamondInputs() []Input {
	return []Input{
		{ID: "a", Duration: 2},
		{ID: "b", Duration: 3, Deps: []string{"a"}},
		{ID: "c", Duration: 2, Deps: []string{"a"}},
		{ID: "d", Duration: 5, Deps: []string{"b", "c"}},
	}
}

func TestCompute_Diamond(t *testing.T) {
	s := mustCompute(t, diamondInputs())

	assertTiming(t, s, "a", 0, 2, 0, 2, 0)
	assertTiming(t, s, "b", 2, 5, 2, 5, 0)
	assertTiming(t, s, "c", 2, 4, 3, 5, 1)
	assertTiming(t, s, "d", 5, 10, 5, 10, 0)

	if s.Horizon != 10 {
		t.Errorf("expected horizon 10, got %d", s.Horizon)
	}
	wantPath := []string{"a", "b", "d"}
	if len(s.CriticalPath) != len(wantPath) {
		t.Fatalf("expected critical path %v, got %v", wantPath, s.CriticalPath)
	}
	for i, id := range wantPath {
		if s.CriticalPath[i] != id {
			t.Fatalf("expected critical path %v, got %v", wantPath, s.CriticalPath)
		}
	}
}

func TestCompute_SuccessorsAreInverseOfDeps(t *testing.T) {
	s := mustCompute(t, diamondInputs())

	a, _ := s.Task("a")
	if len(a.Succs) != 2 || a.Succs[0] != "b" || a.Succs[1] != "c" {
		t.Errorf("expected a.Succs=[b c], got %v", a.Succs)
	}
	d, _ := s.Task("d")
	if len(d.Succs) != 0 {
		t.Errorf("expected d to have no successors, got %v", d.Succs)
	}
}

func TestCompute_Properties(t *testing.T) {
	s := mustCompute(t, []Input{
		{ID: "setup", Duration: 4},
		{ID: "frame", Duration: 7, Deps: []string{"setup"}},
		{ID: "wiring", Duration: 3, Deps: []string{"frame"}},
		{ID: "plumbing", Duration: 5, Deps: []string{"frame"}},
		{ID: "inspect", Duration: 1, Deps: []string{"wiring", "plumbing"}},
		{ID: "paint", Duration: 2, Deps: []string{"inspect"}},
	})

	criticalTotal := 0
	for _, task := range s.Tasks() {
		if len(task.Deps) == 0 && task.ES != 0 {
			t.Errorf("task %s has no deps but ES=%d", task.ID, task.ES)
		}
		if len(task.Succs) == 0 && task.LF != task.EF {
			t.Errorf("task %s has no successors but LF=%d, EF=%d", task.ID, task.LF, task.EF)
		}
		if task.EF-task.ES != task.Duration {
			t.Errorf("task %s: EF-ES != duration", task.ID)
		}
		if task.LF-task.LS != task.Duration {
			t.Errorf("task %s: LF-LS != duration", task.ID)
		}
		if task.Slack < 0 {
			t.Errorf("task %s: negative slack %d", task.ID, task.Slack)
		}
		if task.EF > s.Horizon {
			t.Errorf("task %s: EF=%d beyond horizon %d", task.ID, task.EF, s.Horizon)
		}
	}

	for _, id := range s.CriticalPath {
		task, _ := s.Task(id)
		criticalTotal += task.Duration
	}
	if criticalTotal != s.Horizon {
		t.Errorf("critical chain duration %d != horizon %d", criticalTotal, s.Horizon)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	first := mustCompute(t, diamondInputs())
	second := mustCompute(t, diamondInputs())

	for _, task := range first.Tasks() {
		again, _ := second.Task(task.ID)
		if task.ES != again.ES || task.EF != again.EF || task.LS != again.LS ||
			task.LF != again.LF || task.Slack != again.Slack {
			t.Errorf("task %s: recomputation differs: %+v vs %+v", task.ID, task, again)
		}
	}
}

func TestCompute_IndependentTasks(t *testing.T) {
	s := mustCompute(t, []Input{
		{ID: "x", Duration: 3},
		{ID: "y", Duration: 5},
		{ID: "z", Duration: 1},
	})

	if s.Horizon != 5 {
		t.Errorf("expected horizon 5, got %d", s.Horizon)
	}
	// Every task is its own sink, so each is bounded only by its own
	// finish (LF = EF) and carries no slack.
	assertTiming(t, s, "y", 0, 5, 0, 5, 0)
	assertTiming(t, s, "x", 0, 3, 0, 3, 0)
	// Only the chain through the longest task spans the horizon.
	if len(s.CriticalPath) != 1 || s.CriticalPath[0] != "y" {
		t.Errorf("expected critical path [y], got %v", s.CriticalPath)
	}
}

func TestCompute_SingleTask(t *testing.T) {
	s := mustCompute(t, []Input{{ID: "solo", Duration: 4}})
	assertTiming(t, s, "solo", 0, 4, 0, 4, 0)
	if len(s.CriticalPath) != 1 || s.CriticalPath[0] != "solo" {
		t.Errorf("expected critical path [solo], got %v", s.CriticalPath)
	}
}

func TestCompute_ZeroDurationTask(t *testing.T) {
	s := mustCompute(t, []Input{
		{ID: "a", Duration: 2},
		{ID: "milestone", Duration: 0, Deps: []string{"a"}},
		{ID: "b", Duration: 3, Deps: []string{"milestone"}},
	})
	assertTiming(t, s, "milestone", 2, 2, 2, 2, 0)
	if s.Horizon != 5 {
		t.Errorf("expected horizon 5, got %d", s.Horizon)
	}
}

func TestCompute_CycleRejected(t *testing.T) {
	_, err := Compute([]Input{
		{ID: "a", Duration: 1, Deps: []string{"b"}},
		{ID: "b", Duration: 1, Deps: []string{"a"}},
	})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestCompute_SelfDependencyRejected(t *testing.T) {
	_, err := Compute([]Input{{ID: "a", Duration: 1, Deps: []string{"a"}}})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestCompute_LongerCycleRejected(t *testing.T) {
	_, err := Compute([]Input{
		{ID: "a", Duration: 1, Deps: []string{"c"}},
		{ID: "b", Duration: 1, Deps: []string{"a"}},
		{ID: "c", Duration: 1, Deps: []string{"b"}},
		{ID: "free", Duration: 2},
	})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestCompute_UnknownDependencyRejected(t *testing.T) {
	_, err := Compute([]Input{
		{ID: "a", Duration: 1, Deps: []string{"ghost"}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompute_DuplicateIdentifierRejected(t *testing.T) {
	_, err := Compute([]Input{
		{ID: "a", Duration: 1},
		{ID: "a", Duration: 2},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestTimelineRow(t *testing.T) {
	s := mustCompute(t, diamondInputs())

	c, _ := s.Task("c")
	row := s.TimelineRow(c)
	if len(row) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(row))
	}
	want := []Cell{
		CellInactive, CellInactive,
		CellActive, CellActive,
		CellInactive, CellInactive, CellInactive, CellInactive, CellInactive, CellInactive,
	}
	for i, cell := range row {
		if cell != want[i] {
			t.Errorf("unit %d: expected %v, got %v", i, want[i], cell)
		}
	}

	b, _ := s.Task("b")
	row = s.TimelineRow(b)
	for i := 2; i < 5; i++ {
		if row[i] != CellCritical {
			t.Errorf("unit %d of b: expected critical, got %v", i, row[i])
		}
	}
}
