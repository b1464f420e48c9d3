package hnsw

import "errors"

// Sentinel errors returned by Graph constructors and operations. Each is
// wrapped with additional context via fmt.Errorf("...: %w", Err...), so
// callers can both read a useful message and errors.Is against the
// sentinel.
var (
	// ErrInvalidConfig is returned by NewGraphWithConfig when M,
	// EfConstruction, or Ml is out of range.
	ErrInvalidConfig = errors.New("invalid graph configuration")

	// ErrDimensionMismatch is returned by Insert or Search when the given
	// vector's length differs from the dimension established by the
	// index's first insertion.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidQuery is returned by Search when k <= 0 or efSearch < k.
	ErrInvalidQuery = errors.New("invalid query parameters")
)
