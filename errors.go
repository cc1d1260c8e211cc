package kvkit

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCommand is returned when a nil or empty request is dispatched.
	ErrNilCommand = errors.New("nil command")

	// ErrUnknownCommand is returned when no type.subtype pair matches.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrSketchExists is returned when creating a sketch under a name that
	// is already registered.
	ErrSketchExists = errors.New("sketch already exists")

	// ErrSketchNotFound is returned when an operation names an unregistered
	// sketch.
	ErrSketchNotFound = errors.New("sketch not found")

	// ErrShortReply is returned when a reply frame is shorter than its
	// 4-byte status code.
	ErrShortReply = errors.New("reply frame too short")
)

// ErrBadArgument indicates a positional argument that is missing or cannot
// be parsed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBadArgument struct {
	Position int
	Value    string
	cause    error
}

func (e *ErrBadArgument) Error() string {
	return fmt.Sprintf("bad argument at position %d: %q", e.Position, e.Value)
}

func (e *ErrBadArgument) Unwrap() error { return e.cause }
