package agent

import (
	"errors"
	"fmt"

	"bond_quotation/internal/domain/entities"
)

var (
	ErrUnknownStrategy = errors.New("unknown conversation strategy")
	ErrUnknownPricer   = errors.New("unknown pricing strategy")
)

// ValidationError means the user's text does not satisfy the active stage.
// It is always recoverable: the agent re-prompts and the stage stays put.
type ValidationError struct {
	Stage  entities.Stage
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for stage %s: %s", e.Stage, e.Reason)
}

// LookupFailure wraps an error returned by (or a timeout of) an external lookup.
type LookupFailure struct {
	Lookup string
	Err    error
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("lookup %s failed: %v", e.Lookup, e.Err)
}

func (e *LookupFailure) Unwrap() error {
	return e.Err
}
