package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCriteria is returned when Plan has nothing to translate.
	ErrNoCriteria = errors.New("no criteria")

	// ErrNoProperty is returned for a directive without a property.
	ErrNoProperty = errors.New("directive has no property")

	// ErrUnjoinedEntity is returned when a directive targets another
	// entity without its join flag set.
	ErrUnjoinedEntity = errors.New("directive targets another entity without a join")

	// ErrInvalidBoolean is returned when a boolean criterion value cannot
	// be parsed.
	ErrInvalidBoolean = errors.New("invalid boolean value")

	// ErrInvalidIdentifier is returned when a table or column name is not
	// a plain SQL identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// CriterionError locates a planning failure in the criteria list.
type CriterionError struct {
	Index      int
	Descriptor string
	Err        error
}

func (e *CriterionError) Error() string {
	return fmt.Sprintf("criterion %d (%q): %v", e.Index, e.Descriptor, e.Err)
}

func (e *CriterionError) Unwrap() error {
	return e.Err
}
