package coordinator

import (
	"errors"
	"fmt"
)

// Sentinel errors for coordinator preconditions.
var (
	// ErrNotInitialized indicates an operation ran before SetupNavigationRouter.
	// This is a caller bug, so the accessors that detect it panic.
	ErrNotInitialized = errors.New("navigation router not set up")

	// ErrInvariant indicates the router list no longer matches the presentation
	// chain. Reported only when invariant checks are enabled.
	ErrInvariant = errors.New("router list invariant violated")
)

// PreconditionError reports an operation invoked in a state it does not
// support. Coordinators panic with it; TryTopNavigationRouter returns it.
type PreconditionError struct {
	Op  string // Operation that failed (e.g., "push", "top navigation router")
	Err error  // Underlying error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coordinator: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("coordinator: %s", e.Op)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// InvariantError describes which router broke the presentation chain.
type InvariantError struct {
	Op     string // Operation after which the check ran
	Index  int    // Offending router index
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("coordinator: %s: router %d: %s", e.Op, e.Index, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// IsNotInitialized checks if an error indicates a coordinator without routers.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}

// IsInvariantViolation checks if an error is a router list invariant violation.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariant)
}
