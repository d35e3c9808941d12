package argkmin

import "errors"

// Sentinel errors returned by ArgKMin for every invalid-argument shape it
// validates. Checked with errors.Is; never panics for caller-supplied
// argument errors (internal packages still panic on precondition violations,
// since C7 is the only place user input reaches this module).
//
// Of the three error kinds named in this module's design (invalid argument,
// allocation failure, backend failure), only invalid argument is
// implemented: the GEMM backend is pure scalar/SIMD arithmetic with no I/O
// and no failure mode to surface, and Go's allocator has no recoverable
// failure mode short of a fatal, unrecoverable OOM. Sentinels for those two
// kinds existed in an earlier revision with no code path that could ever
// produce them; they were removed rather than kept as dead contract.
var (
	// ErrInvalidStrategy is returned when a Strategy value outside
	// StrategyAuto, StrategyChunkOnX, StrategyChunkOnY is requested.
	ErrInvalidStrategy = errors.New("argkmin: invalid strategy")

	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("argkmin: k must be >= 1")

	// ErrKExceedsReference is returned when k is greater than the number of
	// reference rows (m).
	ErrKExceedsReference = errors.New("argkmin: k exceeds reference row count")

	// ErrEmptyInput is returned when X or Y has zero rows.
	ErrEmptyInput = errors.New("argkmin: query and reference matrices must be non-empty")

	// ErrDimensionMismatch is returned when X and Y have different column
	// counts, or a matrix's backing slice does not match Rows*Cols.
	ErrDimensionMismatch = errors.New("argkmin: query and reference dimensionality mismatch")
)
