package core

import "fmt"

// UnknownNameError: a reference names a task/data item absent from the IR.
type UnknownNameError struct {
	Name string // the offending name
	From string // the referencing task/template, if known
}

func (e *UnknownNameError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("unknown name %q referenced from %q", e.Name, e.From)
	}
	return fmt.Sprintf("unknown name %q", e.Name)
}

// DuplicateCoordinateError: expansion tried to insert two items with equal
// (name, coordinate).
type DuplicateCoordinateError struct {
	Name       string
	Coordinate Coordinate
}

func (e *DuplicateCoordinateError) Error() string {
	return fmt.Sprintf("duplicate coordinate for %q at %s", e.Name, e.Coordinate)
}

// DimensionMismatchError: an Array received an item whose coordinate's
// dimension set differs from the Array's established dimensions.
type DimensionMismatchError struct {
	Name     string
	Expected []string
	Got      []string
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch for %q: array has %v, item has %v", e.Name, e.Expected, e.Got)
}

// UnresolvedInputError: an input reference resolved to zero items with no
// valid excuse (§4.5's arity enforcement).
type UnresolvedInputError struct {
	Task       string
	Coordinate Coordinate
	Port       string
	Target     string
}

func (e *UnresolvedInputError) Error() string {
	return fmt.Sprintf("unresolved input %q on task %q at %s: target %q produced no items",
		e.Port, e.Task, e.Coordinate, e.Target)
}

// MultipleWritersError: two distinct Task items declared the same output
// Data coordinate (single-writer invariant, §3 invariant 5).
type MultipleWritersError struct {
	DataName   string
	Coordinate Coordinate
	FirstTask  string
	SecondTask string
}

func (e *MultipleWritersError) Error() string {
	return fmt.Sprintf("multiple writers for %q at %s: %q and %q",
		e.DataName, e.Coordinate, e.FirstTask, e.SecondTask)
}

// CyclicError: the graph has a non-temporal dependency cycle (§4.5).
type CyclicError struct {
	Cycle []string // task refs (name plus coordinate), in cycle order
}

func (e *CyclicError) Error() string {
	return fmt.Sprintf("cyclic dependency: %v", e.Cycle)
}

// BadDurationError: a malformed duration literal reached the core.
type BadDurationError struct {
	Literal string
	Err     error
}

func (e *BadDurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad duration %q: %v", e.Literal, e.Err)
	}
	return fmt.Sprintf("bad duration %q", e.Literal)
}

func (e *BadDurationError) Unwrap() error { return e.Err }

// BadDateError: a malformed date literal reached the core.
type BadDateError struct {
	Literal string
	Err     error
}

func (e *BadDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad date %q: %v", e.Literal, e.Err)
	}
	return fmt.Sprintf("bad date %q", e.Literal)
}

func (e *BadDateError) Unwrap() error { return e.Err }

// MissingError: Store.lookup found no item — distinct from an empty
// lookup_partial result, which is a legal empty list (§4.3).
type MissingError struct {
	Name       string
	Coordinate Coordinate
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing item %q at %s", e.Name, e.Coordinate)
}
