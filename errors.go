package aoc

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrSampleMismatch is returned when a part's answer for its sample input
	// differs from the sample's want value.
	ErrSampleMismatch = zerr.New("sample answer mismatch")

	// ErrNoSample is returned in sample-only mode for a part without a sample.
	ErrNoSample = zerr.New("no sample for part")

	// ErrSolverFailed is returned when a part panics.
	ErrSolverFailed = zerr.New("solver failed")

	// ErrNoSuchPart is returned when a part filter matches none of a day's parts.
	ErrNoSuchPart = zerr.New("no such part")

	// ErrBadSolver is returned when a D<day>p<part> method has the wrong signature.
	ErrBadSolver = zerr.New("bad solver method")
)

// InvalidDayError reports a day argument that is not a number in 1..25 or has
// no registered solver.
type InvalidDayError struct {
	Arg        string
	Registered []int
}

func (e *InvalidDayError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("invalid day %q: want a number between 1 and 25", e.Arg)
	}
	return fmt.Sprintf("invalid day %q: no solver registered (have %v)", e.Arg, e.Registered)
}

// MissingInputError reports that a day's puzzle input could not be found or
// downloaded.
type MissingInputError struct {
	Day  int
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing input for day %d at %s: %v", e.Day, e.Path, e.Err)
	}
	return fmt.Sprintf("missing input for day %d at %s", e.Day, e.Path)
}

func (e *MissingInputError) Unwrap() error { return e.Err }
