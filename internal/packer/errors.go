package packer

import "errors"

// Common errors.
var (
	// ErrUnknownStrategy reports an unsupported truncation strategy at
	// construction time.
	ErrUnknownStrategy = errors.New(`truncate must be "round_robin" or "waterfall"`)

	// ErrSequenceLength reports a non-positive output width.
	ErrSequenceLength = errors.New("sequence length must be positive")

	// ErrNoSegments reports an empty segment collection.
	ErrNoSegments = errors.New("at least one segment is required for packing")

	// ErrBatchSize reports segments with mismatched batch sizes.
	ErrBatchSize = errors.New("all segments must have the same batch size")

	// ErrBudgetExceeded reports that the fixed delimiter overhead alone
	// exceeds the sequence length, leaving no valid trimming budget.
	ErrBudgetExceeded = errors.New("delimiter overhead exceeds sequence length")
)
