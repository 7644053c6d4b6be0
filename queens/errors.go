package queens

import "errors"

// Sentinel errors returned by this package. Callers can match them with
// errors.Is; the wrapped messages carry the offending values.
var (
	// ErrInvalidState reports a state built from the wrong number of ranks
	// or from a rank outside [1, BoardSize].
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidFile reports a rank lookup with an unknown file label or an
	// out-of-range file index.
	ErrInvalidFile = errors.New("invalid file")

	// ErrInvalidProbability reports a mutation probability outside [0.0, 1.0).
	ErrInvalidProbability = errors.New("invalid mutation probability")

	// ErrSampleSize reports a request for a non-positive number of random
	// states, or for more states than the space holds.
	ErrSampleSize = errors.New("invalid sample size")
)
