package spevent

import "errors"

// Sentinel errors returned (wrapped with context) by the kernel.
// Match with errors.Is.
var (
	// ErrInvalidShape indicates an input buffer that is not a
	// well-formed matrix of the stated dimensions.
	ErrInvalidShape = errors.New("invalid matrix shape")

	// ErrNonFinite indicates a NaN or infinite input coordinate.
	ErrNonFinite = errors.New("non-finite input value")

	// ErrShapeMismatch indicates inputs whose lengths disagree with
	// each other (e.g. a linkage table and its distance vector).
	ErrShapeMismatch = errors.New("inconsistent input lengths")

	// ErrBadThreshold indicates a negative or NaN cluster distance
	// threshold.
	ErrBadThreshold = errors.New("invalid cluster distance threshold")

	// ErrBadWindow indicates a rolling window size outside [1, len(x)].
	ErrBadWindow = errors.New("invalid window size")

	// ErrBadLimits indicates an accumulation limit above the detection
	// limit.
	ErrBadLimits = errors.New("invalid detection limits")

	// ErrBadMethod indicates an unknown limit method.
	ErrBadMethod = errors.New("unknown limit method")

	// ErrEmptySignal indicates an empty response array where at least
	// one sample is required.
	ErrEmptySignal = errors.New("empty signal")
)
