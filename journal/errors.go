package journal

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid trade")
	ErrCapacity   = errors.New("trade limit reached")
)

// ValidationError reports a missing or unusable required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trade: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// CapacityError is returned when the collection already holds Limit
// trades.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("free version limited to %d trades", e.Limit)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }
