package schedule

// Stage tracks how far a run has progressed. Every transition requires the
// previous stage to have completed for the entire task set, because later
// passes use earlier results as their base cases.
type Stage int

const (
	StageLoaded Stage = iota
	StageSuccessorsPopulated
	StageForwardComputed
	StageBackwardComputed
	StageSlackComputed
)

// Registry owns every Task for one scheduling run. Identifiers are indexed
// to stable integer handles at registration; the passes operate over handles
// so that an invalid reference fails fast instead of surfacing as a missed
// linear scan deep inside a pass.
type Registry struct {
	tasks []*Task // registration order
	index map[string]int

	deps  [][]int // handle -> dependency handles, filled by deriveSuccessors
	succs [][]int // handle -> successor handles, filled by deriveSuccessors

	stage Stage
}

// NewRegistry returns an empty registry at StageLoaded.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a task. The identifier must be non-empty and unused, the
// duration non-negative. Dependencies are not resolved here; that happens
// in one shot once every task is known.
func (r *Registry) Register(in Input) error {
	if in.ID == "" {
		return invalidf("task identifier is required")
	}
	if in.Duration < 0 {
		return invalidf("task %q: duration must be non-negative, got %d", in.ID, in.Duration)
	}
	if _, exists := r.index[in.ID]; exists {
		return duplicatef(in.ID)
	}
	deps := make([]string, len(in.Deps))
	copy(deps, in.Deps)
	r.index[in.ID] = len(r.tasks)
	r.tasks = append(r.tasks, &Task{ID: in.ID, Duration: in.Duration, Deps: deps})
	return nil
}

// Lookup resolves a task by identifier.
func (r *Registry) Lookup(id string) (*Task, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, notFoundf("%q", id)
	}
	return r.tasks[i], nil
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int { return len(r.tasks) }

// Tasks returns the tasks in registration order. The registry remains the
// single owner; callers must treat the records as read-only.
func (r *Registry) Tasks() []*Task {
	out := make([]*Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}
