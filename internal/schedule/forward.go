package schedule

// Visit marks for the memoized passes. A gray node reached again on the same
// call stack is a cycle.
const (
	markWhite = 0
	markGray  = 1
	markBlack = 2
)

// forwardPass computes the earliest start of every task:
//
//	ES = 0 for a task with no dependencies (the project anchors at time 0)
//	ES = max over dependencies D of (ES(D) + duration(D)) otherwise
//
// Each task is resolved at most once; shared sub-results are memoized so the
// pass is linear in the number of dependency edges even on wide diamond
// graphs. EF follows as ES + duration by construction.
func (r *Registry) forwardPass() error {
	if r.stage != StageSuccessorsPopulated {
		return invalidf("forward pass requires populated successors")
	}

	mark := make([]int8, len(r.tasks))
	es := make([]int, len(r.tasks))
	var stack []int

	var visit func(i int) error
	visit = func(i int) error {
		switch mark[i] {
		case markBlack:
			return nil
		case markGray:
			return cycleError(r.cycleWitness(stack, i))
		}
		mark[i] = markGray
		stack = append(stack, i)

		start := 0
		for _, d := range r.deps[i] {
			if err := visit(d); err != nil {
				return err
			}
			if finish := es[d] + r.tasks[d].Duration; finish > start {
				start = finish
			}
		}

		stack = stack[:len(stack)-1]
		mark[i] = markBlack
		es[i] = start
		return nil
	}

	for i := range r.tasks {
		if err := visit(i); err != nil {
			return err
		}
	}

	for i, t := range r.tasks {
		t.ES = es[i]
		t.EF = es[i] + t.Duration
	}
	r.stage = StageForwardComputed
	return nil
}

// cycleWitness extracts the cycle path from the in-progress stack: the
// segment from the first occurrence of the revisited node to the top,
// closed back on itself.
func (r *Registry) cycleWitness(stack []int, revisited int) []string {
	start := 0
	for i, n := range stack {
		if n == revisited {
			start = i
			break
		}
	}
	out := make([]string, 0, len(stack)-start+1)
	for _, n := range stack[start:] {
		out = append(out, r.tasks[n].ID)
	}
	return append(out, r.tasks[revisited].ID)
}
