package export

import "errors"

// Common errors. Stream failures are not enumerated here: they propagate
// from the underlying writer or reader, wrapped with positional context.
var (
	// ErrUnsupportedLayer marks a layer whose kind is outside the closed
	// set the format can represent.
	ErrUnsupportedLayer = errors.New("unsupported layer kind")

	// ErrUnsupportedActivation marks an activation outside the closed
	// enumeration.
	ErrUnsupportedActivation = errors.New("unsupported activation")

	// ErrShapeInconsistency marks an internal invariant violation, such as
	// a bias length disagreeing with the weight matrix or a chunked write
	// whose element count does not match the source array. It indicates a
	// programming error, not a recoverable user error.
	ErrShapeInconsistency = errors.New("shape inconsistency")
)
