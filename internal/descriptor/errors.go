package descriptor

import (
	"errors"
	"fmt"
)

// ErrSegmentCount is matched by errors.Is for every SegmentCountError.
var ErrSegmentCount = errors.New("segment count out of range")

// ErrEmptyEntity is returned when a directive would have no entity.
var ErrEmptyEntity = errors.New("entity must not be empty")

// ErrorCode categorizes descriptor errors.
type ErrorCode string

const (
	// ErrCodeSegmentCount indicates a descriptor with fewer than 1 or more
	// than 3 segments.
	ErrCodeSegmentCount ErrorCode = "SEGMENT_COUNT"
)

// SegmentCountError reports a descriptor whose segment count has no
// dispatch rule.
type SegmentCountError struct {
	Code     ErrorCode
	Raw      string
	Segments int
}

func (e *SegmentCountError) Error() string {
	return fmt.Sprintf("%s: descriptor %q has %d segments, want 1 to 3", e.Code, e.Raw, e.Segments)
}

// Is makes errors.Is(err, ErrSegmentCount) match.
func (e *SegmentCountError) Is(target error) bool {
	return target == ErrSegmentCount
}

// IsSegmentCountError returns true if err is or wraps a SegmentCountError.
func IsSegmentCountError(err error) bool {
	var se *SegmentCountError
	return errors.As(err, &se)
}

func newSegmentCountError(raw string, n int) *SegmentCountError {
	return &SegmentCountError{Code: ErrCodeSegmentCount, Raw: raw, Segments: n}
}
