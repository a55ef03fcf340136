package schedule

// Schedule is the read-only result of a complete CPM computation: per-task
// timing attributes in registration order, the project horizon, and one
// end-to-end critical chain.
type Schedule struct {
	tasks []*Task
	index map[string]int

	Horizon      int
	CriticalPath []string
}

// Compute runs the full pass pipeline over the given records:
// register everything, derive successors, forward pass, backward pass,
// slack classification. Each stage takes the previous stage's complete
// output; on any failure no partial schedule is produced.
func Compute(inputs []Input) (*Schedule, error) {
	reg := NewRegistry()
	for _, in := range inputs {
		if err := reg.Register(in); err != nil {
			return nil, err
		}
	}

	if err := reg.deriveSuccessors(); err != nil {
		return nil, err
	}
	if err := reg.forwardPass(); err != nil {
		return nil, err
	}
	if err := reg.backwardPass(); err != nil {
		return nil, err
	}
	if err := reg.computeSlack(); err != nil {
		return nil, err
	}

	s := &Schedule{
		tasks:        reg.Tasks(),
		index:        reg.index,
		CriticalPath: reg.criticalChain(),
	}
	for _, t := range s.tasks {
		if t.EF > s.Horizon {
			s.Horizon = t.EF
		}
	}
	return s, nil
}

// Tasks returns the scheduled tasks in registration order.
func (s *Schedule) Tasks() []*Task {
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task resolves one scheduled task by identifier.
func (s *Schedule) Task(id string) (*Task, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.tasks[i], true
}

// Cell classifies a single time unit of a task's timeline row.
type Cell int

const (
	CellInactive Cell = iota // time outside [ES, EF)
	CellActive               // inside [ES, EF) with slack to spare
	CellCritical             // inside [ES, EF) on the critical path
)

// TimelineRow maps a task onto the project horizon, one cell per time unit.
func (s *Schedule) TimelineRow(t *Task) []Cell {
	row := make([]Cell, s.Horizon)
	for unit := t.ES; unit < t.EF; unit++ {
		if t.Critical {
			row[unit] = CellCritical
		} else {
			row[unit] = CellActive
		}
	}
	return row
}
