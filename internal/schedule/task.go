package schedule

// Input is one raw task record as handed over by the loader: an identifier,
// a duration in whole time units, and the identifiers this task waits on.
type Input struct {
	ID       string
	Duration int
	Deps     []string
}

// Task is a single unit of project work together with its computed CPM
// attributes. Deps comes from the input; Succs is derived once from the
// dependency relation. ES/EF/LS/LF/Slack are written by the passes and are
// read-only afterwards.
type Task struct {
	ID       string
	Duration int
	Deps     []string
	Succs    []string

	ES       int // earliest start
	EF       int // earliest finish, ES + Duration
	LS       int // latest start, LF - Duration
	LF       int // latest finish
	Slack    int // LS - ES; zero on the critical path
	Critical bool
}
