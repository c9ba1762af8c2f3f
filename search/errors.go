package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind is returned when a search is requested for a kind outside the supported set.
	ErrInvalidKind = errors.New("unknown item type")
	// ErrNodeNotFound is returned when a trace lookup names a node the search never discovered.
	ErrNodeNotFound = errors.New("node not found in trace")
	// ErrNotRelated is returned when an explanation is requested for an item outside the results.
	ErrNotRelated = errors.New("item is not related")
)

// InvalidKindError carries the rejected kind alongside ErrInvalidKind.
type InvalidKindError struct {
	Kind string
}

func (e *InvalidKindError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %q (valid options: %s)", ErrInvalidKind, e.Kind, SupportedKindNames())
}

func (e *InvalidKindError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidKind
}

func validateKind(k Kind) error {
	if !k.IsValid() {
		return &InvalidKindError{Kind: string(k)}
	}
	return nil
}
