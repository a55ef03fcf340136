package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. A run fails with exactly one of these; none are retryable
// since the computation is deterministic over a fixed input.
var (
	ErrInvalidTask  = errors.New("invalid task")
	ErrDuplicateID  = errors.New("duplicate task identifier")
	ErrNotFound     = errors.New("task not found")
	ErrCycle        = errors.New("cyclic dependency")
	ErrBackwardPass = errors.New("backward pass underdetermined")
)

// Error wraps a scheduling failure with the identifier(s) that caused it.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidTask, Msg: fmt.Sprintf(format, args...)}
}

func duplicatef(id string) error {
	return &Error{Kind: ErrDuplicateID, Msg: fmt.Sprintf("%q", id)}
}

func notFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func cycleError(path []string) error {
	msg := "cycle"
	if len(path) > 0 {
		msg = "cycle: " + strings.Join(path, " -> ")
	}
	return &Error{Kind: ErrCycle, Msg: msg}
}

func underdeterminedf(id string) error {
	return &Error{Kind: ErrBackwardPass, Msg: fmt.Sprintf("task %q has successors but no resolved late finish", id)}
}
