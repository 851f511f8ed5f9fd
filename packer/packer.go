// Package packer packs variable-length token segments into fixed width
// transformer model inputs, following the BERT packing convention.
//
// This package wraps the internal packer implementation and provides a
// clean public API for model-input pipelines.
//
// Example usage:
//
//	import "github.com/seqpack-ml/seqpack/packer"
//
//	p, err := packer.New(packer.Config[int32]{
//	    SequenceLength: 8,
//	    StartValue:     []int32{101},
//	    EndValue:       []int32{102},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens, segmentIDs, err := p.Pack(
//	    []int32{1, 2, 3, 4},
//	    []int32{11, 12, 13, 14},
//	)
//	// tokens:     [101 1 2 3 102 11 12 102]
//	// segmentIDs: [0 0 0 0 0 1 1 1]
package packer

import (
	"github.com/seqpack-ml/seqpack/internal/packer"
	"github.com/seqpack-ml/seqpack/ragged"
)

// MultiSegmentPacker packs multiple token segments into a single fixed
// width sequence with delimiters and parallel segment ids.
//
// The packer is immutable after construction and safe for concurrent use.
type MultiSegmentPacker[T ragged.Token] = packer.MultiSegmentPacker[T]

// Config configures a MultiSegmentPacker.
type Config[T ragged.Token] = packer.Config[T]

// Errors reported by construction and packing.
var (
	ErrUnknownStrategy = packer.ErrUnknownStrategy
	ErrSequenceLength  = packer.ErrSequenceLength
	ErrNoSegments      = packer.ErrNoSegments
	ErrBatchSize       = packer.ErrBatchSize
	ErrBudgetExceeded  = packer.ErrBudgetExceeded
)

// New creates a MultiSegmentPacker from a configuration.
// The configuration is validated eagerly.
func New[T ragged.Token](cfg Config[T]) (*MultiSegmentPacker[T], error) {
	return packer.New(cfg)
}

// ConfigFromJSON reconstructs a configuration serialized with
// Config.ToJSON. A packer built from the result behaves identically to
// the original.
func ConfigFromJSON[T ragged.Token](data []byte) (Config[T], error) {
	return packer.ConfigFromJSON[T](data)
}

// PaddingMask derives the BERT-style padding mask from a packed token
// matrix: true at content positions, false where the pad value appears.
func PaddingMask[T ragged.Token](tokens *ragged.Matrix[T], pad T) [][]bool {
	return packer.PaddingMask(tokens, pad)
}
