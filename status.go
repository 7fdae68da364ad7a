package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a handle's index is past the arena's capacity.
	ErrOutOfBounds = errors.New("arena: handle index out of bounds")
	// ErrOutdatedGeneration is returned when the slot has been freed since the handle was issued.
	ErrOutdatedGeneration = errors.New("arena: handle generation is outdated")
	// ErrEmptySlot signals a slot whose generation matches but which holds no value.
	// It indicates a broken internal invariant rather than caller misuse.
	ErrEmptySlot = errors.New("arena: slot is empty")
)

// Status is the outcome of resolving a handle against an arena.
type Status uint8

const (
	// StatusFound means the handle refers to a live value.
	StatusFound Status = iota
	// StatusEmpty means the index and generation match but the slot holds no value.
	StatusEmpty
	// StatusOutdatedGeneration means the handle is stale.
	StatusOutdatedGeneration
	// StatusOutOfBounds means the index is not a slot of this arena.
	StatusOutOfBounds
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusEmpty:
		return "empty"
	case StatusOutdatedGeneration:
		return "outdated generation"
	case StatusOutOfBounds:
		return "out of bounds"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Err returns the sentinel error for s, or nil for StatusFound.
func (s Status) Err() error {
	switch s {
	case StatusFound:
		return nil
	case StatusEmpty:
		return ErrEmptySlot
	case StatusOutdatedGeneration:
		return ErrOutdatedGeneration
	case StatusOutOfBounds:
		return ErrOutOfBounds
	default:
		return fmt.Errorf("arena: unknown status %d", uint8(s))
	}
}

// HandleError records a failed arena operation and the handle that caused it.
//
// The sentinel error can be matched with errors.Is.
type HandleError struct {
	Op     string
	Handle Handle
	Err    error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Handle, e.Err)
}

func (e *HandleError) Unwrap() error { return e.Err }
