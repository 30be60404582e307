package sim

import "errors"

// Errors reported at setup or schedule time. Per-index updates are total over
// their input domain and cannot fail mid-tick.
var (
	// ErrShapeMismatch indicates paired buffers disagree on length.
	ErrShapeMismatch = errors.New("buffer shape mismatch")

	// ErrScheduleConflict indicates a tick was scheduled while a previous
	// one on the same driver had not been waited on.
	ErrScheduleConflict = errors.New("schedule conflict: tick already in flight")

	// ErrInvalidConfig indicates a non-positive population or batch size, or
	// negative spawn bounds.
	ErrInvalidConfig = errors.New("invalid configuration")
)
