package valves

import "errors"

// Every error returned by this package wraps one of these; match with
// errors.Is.
var (
	// ErrUndefinedValve is returned when a tunnel leads to an id that has no
	// record.
	ErrUndefinedValve = errors.New("valves: reference to undefined valve")

	// ErrDuplicateValve is returned when two records share an id.
	ErrDuplicateValve = errors.New("valves: duplicate valve")

	// ErrNegativeFlow is returned for a record with a flow rate below zero.
	ErrNegativeFlow = errors.New("valves: negative flow rate")

	// ErrMissingStart is returned when the start valve is not in the graph.
	ErrMissingStart = errors.New("valves: start valve not found")

	// ErrTooManyValves is returned when there are more worthwhile valves than
	// a Set can hold.
	ErrTooManyValves = errors.New("valves: too many worthwhile valves")
)
