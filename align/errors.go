package align

import "errors"

// Sentinel errors of the align package. Every message is prefixed with
// "align: ..."; context is attached with fmt.Errorf("...: %w", ErrX), so
// callers match with errors.Is.
var (
	// ErrNilPolicy indicates that Build/Compare received a nil Policy.
	ErrNilPolicy = errors.New("align: scoring policy is nil")

	// ErrNonFiniteScore indicates that a Policy returned NaN or ±Inf for a
	// valid index. The comparison that produced it is aborted.
	ErrNonFiniteScore = errors.New("align: scoring policy returned a non-finite value")

	// ErrOutOfRange indicates that a matrix cell outside [0,Rows)×[0,Cols)
	// was requested.
	ErrOutOfRange = errors.New("align: index out of range")

	// ErrDimensionMismatch indicates that the sequences handed to Backtrace
	// are not the ones the Matrix was built from (by length).
	ErrDimensionMismatch = errors.New("align: matrix does not match sequences")

	// ErrBrokenPath is an internal-consistency fault: backtrace reached a
	// cell with an empty direction set before the origin. It means the
	// matrix was built incorrectly and is never a user error.
	ErrBrokenPath = errors.New("align: internal error: broken backtrace path")

	// ErrUnknownPolicy indicates that PolicyByName was given a name that
	// does not denote a built-in policy.
	ErrUnknownPolicy = errors.New("align: unknown scoring policy")
)
