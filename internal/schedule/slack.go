package schedule

// computeSlack derives slack and the critical flag for every task. Purely a
// view over the two passes' outputs; runs only after both have completed for
// the whole task set.
func (r *Registry) computeSlack() error {
	if r.stage != StageBackwardComputed {
		return invalidf("slack requires both passes to have completed")
	}
	for _, t := range r.tasks {
		t.Slack = t.LS - t.ES
		t.Critical = t.Slack == 0
	}
	r.stage = StageSlackComputed
	return nil
}

// criticalChain extracts one end-to-end zero-slack chain whose total
// duration equals the project horizon. The sink with the largest earliest
// finish is always critical, so the chain is walked backwards from there
// through critical dependencies that finish exactly when the current task
// starts; on a valid acyclic project such a dependency always exists until
// a dependency-free task is reached.
func (r *Registry) criticalChain() []string {
	end := -1
	for i, t := range r.tasks {
		if end == -1 || t.EF > r.tasks[end].EF {
			end = i
		}
	}
	if end == -1 {
		return nil
	}

	var rev []int
	for cur := end; ; {
		rev = append(rev, cur)
		next := -1
		for _, d := range r.deps[cur] {
			dt := r.tasks[d]
			if dt.Critical && dt.EF == r.tasks[cur].ES {
				next = d
				break
			}
		}
		if next == -1 {
			break
		}
		cur = next
	}

	chain := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		chain = append(chain, r.tasks[rev[i]].ID)
	}
	return chain
}
