package aggregation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord matches every *InvalidRecordError via errors.Is.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrLikesOverflow is returned when a likes total no longer fits in an int64.
	ErrLikesOverflow = errors.New("likes total overflows int64")
)

// InvalidRecordError reports the element that made an aggregation fail.
// Index is the element's position in the input sequence.
type InvalidRecordError struct {
	Index  int
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidRecordError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid record at index %d: field %q has value %v", e.Index, e.Field, e.Value)
	}
	return fmt.Sprintf("invalid record at index %d: field %q has value %v: %s", e.Index, e.Field, e.Value, e.Reason)
}

// Is lets callers match with errors.Is(err, ErrInvalidRecord).
func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Details returns the structured fields for API error responses.
func (e *InvalidRecordError) Details() map[string]interface{} {
	return map[string]interface{}{
		"index":  e.Index,
		"field":  e.Field,
		"value":  e.Value,
		"reason": e.Reason,
	}
}

func invalidLikes(index int, value interface{}, reason string) *InvalidRecordError {
	return &InvalidRecordError{Index: index, Field: FieldLikes, Value: value, Reason: reason}
}
