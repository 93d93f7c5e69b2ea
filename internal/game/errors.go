package game

import "fmt"

// ValidationError means the input itself is bad (e.g. an unknown topic).
// The session state is unaffected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// ConflictError means a business rule was violated: room already full,
// self-join, duplicate open session. The session state is unaffected.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// NotFoundError means the referenced room or topic does not exist. Most call
// sites treat it as a soft no-op because the partner may have torn the room
// down already; Join and Advance surface it.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
