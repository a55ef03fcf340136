package schedule

import "math"

// backwardPass computes the latest finish of every task, mirrored over the
// successor relation:
//
//	LF = EF for a task with no successors (a sink is limited only by itself)
//	LF = min over successors S of (LF(S) - duration(S)) otherwise
//
// It must run after the forward pass (EF is the sink base case) and after
// successors are derived. Memoization and cycle marking mirror the forward
// pass; the cycle check cannot fire on a graph the forward pass accepted but
// stays as an internal-consistency guard. LS follows as LF - duration.
func (r *Registry) backwardPass() error {
	if r.stage != StageForwardComputed {
		return invalidf("backward pass requires forward pass results")
	}

	mark := make([]int8, len(r.tasks))
	lf := make([]int, len(r.tasks))
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

		finish := r.tasks[i].EF
		if len(r.succs[i]) > 0 {
			// Sentinel larger than any feasible finish; it must be beaten
			// by at least one successor before it can be stored.
			finish = math.MaxInt
			for _, s := range r.succs[i] {
				if err := visit(s); err != nil {
					return err
				}
				if start := lf[s] - r.tasks[s].Duration; start < finish {
					finish = start
				}
			}
			if finish == math.MaxInt {
				return underdeterminedf(r.tasks[i].ID)
			}
		}

		stack = stack[:len(stack)-1]
		mark[i] = markBlack
		lf[i] = finish
		return nil
	}

	for i := range r.tasks {
		if err := visit(i); err != nil {
			return err
		}
	}

	for i, t := range r.tasks {
		t.LF = lf[i]
		t.LS = lf[i] - t.Duration
	}
	r.stage = StageBackwardComputed
	return nil
}
