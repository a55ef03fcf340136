package schedule

import "sort"

// deriveSuccessors builds the inverse of the dependency relation: for every
// task T and declared dependency D, T becomes a successor of D.
//
// All dependency references are validated before any successor set is
// touched, so a bad reference can never leave a half-populated graph behind.
// Runs exactly once per registry, after all registrations and before any
// pass. Successor lists are kept sorted for deterministic traversal.
func (r *Registry) deriveSuccessors() error {
	if r.stage != StageLoaded {
		return invalidf("successors already derived")
	}

	for _, t := range r.tasks {
		for _, dep := range t.Deps {
			if _, ok := r.index[dep]; !ok {
				return notFoundf("task %q depends on unknown task %q", t.ID, dep)
			}
			if dep == t.ID {
				return cycleError([]string{t.ID, t.ID})
			}
		}
	}

	r.deps = make([][]int, len(r.tasks))
	r.succs = make([][]int, len(r.tasks))
	for i, t := range r.tasks {
		for _, dep := range t.Deps {
			d := r.index[dep]
			r.deps[i] = append(r.deps[i], d)
			r.succs[d] = append(r.succs[d], i)
		}
	}
	for i := range r.succs {
		sort.Ints(r.succs[i])
	}

	for i, t := range r.tasks {
		t.Succs = make([]string, 0, len(r.succs[i]))
		for _, s := range r.succs[i] {
			t.Succs = append(t.Succs, r.tasks[s].ID)
		}
	}

	r.stage = StageSuccessorsPopulated
	return nil
}
