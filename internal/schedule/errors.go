package schedule

import (
	"errors"
	"fmt"
)

// Sentinel errors for schedule mutations. Callers match them with errors.Is.
var (
	// ErrDuplicateTag indicates an add with a tag already present in the schedule.
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrNotFound indicates an update or remove for an unknown tag.
	ErrNotFound = errors.New("item not found")
)

// ValidationError indicates a field outside its allowed domain after any
// clamping rules were applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
