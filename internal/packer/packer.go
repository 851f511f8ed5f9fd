package packer

import (
	"fmt"

	"github.com/seqpack-ml/seqpack/internal/ragged"
	"github.com/seqpack-ml/seqpack/internal/trim"
)

// MultiSegmentPacker packs multiple token segments into a single fixed
// width sequence with start/sep/end delimiters and parallel segment ids,
// forming a dense input suitable for BERT-style classification.
//
// Inputs are processed as follows:
//   - Truncate all segments to fit within SequenceLength according to
//     the configured strategy, reserving room for the delimiters.
//   - Concatenate the segments, adding StartValue at the start of the
//     sequence, SepValue after every segment but the last, and EndValue
//     after the last.
//   - Pad the result to SequenceLength using PadValue.
//   - Produce a parallel sequence of segment ids recording which segment
//     each output token originated from. The ids of StartValue are
//     always 0, and the ids of each delimiter are those of the segment
//     that precedes it.
//
// The packer is immutable after construction and safe for concurrent use.
type MultiSegmentPacker[T ragged.Token] struct {
	cfg Config[T]
	sep []T
}

// New creates a MultiSegmentPacker from a configuration.
// The configuration is validated eagerly; an unsupported truncation
// strategy or non-positive sequence length is rejected here.
func New[T ragged.Token](cfg Config[T]) (*MultiSegmentPacker[T], error) {
	if cfg.SequenceLength <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrSequenceLength, cfg.SequenceLength)
	}

	if cfg.Truncate == "" {
		cfg.Truncate = trim.RoundRobinStrategy
	}
	if _, err := trim.ParseStrategy(string(cfg.Truncate)); err != nil {
		return nil, fmt.Errorf("%w, got %q", ErrUnknownStrategy, cfg.Truncate)
	}

	sep := cfg.SepValue
	if sep == nil {
		sep = cfg.EndValue
	}

	return &MultiSegmentPacker[T]{cfg: cfg, sep: sep}, nil
}

// Config returns the configuration the packer was built from.
// SepValue is reported as configured, not as resolved.
func (p *MultiSegmentPacker[T]) Config() Config[T] {
	return p.cfg
}

// SequenceLength returns the width of every packed output row.
func (p *MultiSegmentPacker[T]) SequenceLength() int {
	return p.cfg.SequenceLength
}

// overhead returns the number of delimiter tokens added when packing
// numSegments segments.
func (p *MultiSegmentPacker[T]) overhead(numSegments int) int {
	return len(p.cfg.StartValue) + (numSegments-1)*len(p.sep) + len(p.cfg.EndValue)
}

// Pack packs a single example: each argument is one segment's tokens.
// It returns the packed token sequence and its segment ids, both of
// length exactly SequenceLength.
func (p *MultiSegmentPacker[T]) Pack(segments ...[]T) ([]T, []int32, error) {
	inputs := make([]*ragged.Batch[T], len(segments))
	for i, seg := range segments {
		inputs[i] = ragged.FromRows([][]T{seg})
	}

	tokens, segmentIDs, err := p.PackBatch(inputs...)
	if err != nil {
		return nil, nil, err
	}
	return tokens.Row(0), segmentIDs.Row(0), nil
}

// PackBatch packs a batch of examples: each argument is one segment as a
// jagged batch, with row i of every segment belonging to example i.
// It returns dense token and segment id matrices of shape
// (batch size, SequenceLength).
func (p *MultiSegmentPacker[T]) PackBatch(inputs ...*ragged.Batch[T]) (*ragged.Matrix[T], *ragged.Matrix[int32], error) {
	if len(inputs) == 0 {
		return nil, nil, ErrNoSegments
	}
	batchSize := inputs[0].NumRows()
	for _, in := range inputs[1:] {
		if in.NumRows() != batchSize {
			return nil, nil, fmt.Errorf("%w: %d vs %d", ErrBatchSize, batchSize, in.NumRows())
		}
	}

	overhead := p.overhead(len(inputs))
	budget := p.cfg.SequenceLength - overhead
	if budget < 0 {
		return nil, nil, fmt.Errorf("%w: %d delimiter tokens for %d segments with sequence length %d",
			ErrBudgetExceeded, overhead, len(inputs), p.cfg.SequenceLength)
	}

	trimmed, err := p.trimSegments(inputs, budget)
	if err != nil {
		return nil, nil, err
	}

	tokens, segmentIDs, err := p.assemble(trimmed)
	if err != nil {
		return nil, nil, err
	}

	tokenMatrix, err := tokens.ToMatrix(p.cfg.SequenceLength, p.cfg.PadValue)
	if err != nil {
		return nil, nil, err
	}
	idMatrix, err := segmentIDs.ToMatrix(p.cfg.SequenceLength, 0)
	if err != nil {
		return nil, nil, err
	}
	return tokenMatrix, idMatrix, nil
}

// trimSegments truncates each example's segments so their lengths sum to
// at most budget, using the configured strategy row by row.
func (p *MultiSegmentPacker[T]) trimSegments(inputs []*ragged.Batch[T], budget int) ([]*ragged.Batch[T], error) {
	batchSize := inputs[0].NumRows()

	perSegment := make([][]int, len(inputs))
	for s := range perSegment {
		perSegment[s] = make([]int, batchSize)
	}

	lens := make([]int, len(inputs))
	for row := 0; row < batchSize; row++ {
		for s, in := range inputs {
			lens[s] = in.RowLen(row)
		}
		for s, n := range p.cfg.Truncate.Trim(lens, budget) {
			perSegment[s][row] = n
		}
	}

	trimmed := make([]*ragged.Batch[T], len(inputs))
	for s, in := range inputs {
		out, err := in.Truncate(perSegment[s])
		if err != nil {
			return nil, err
		}
		trimmed[s] = out
	}
	return trimmed, nil
}

// assemble interleaves trimmed segments with delimiter columns and builds
// the parallel segment id batch. Trimming must already guarantee every
// row fits in SequenceLength.
func (p *MultiSegmentPacker[T]) assemble(segments []*ragged.Batch[T]) (*ragged.Batch[T], *ragged.Batch[int32], error) {
	batchSize := segments[0].NumRows()
	startColumns := ragged.Repeat(p.cfg.StartValue, batchSize)
	sepColumns := ragged.Repeat(p.sep, batchSize)
	endColumns := ragged.Repeat(p.cfg.EndValue, batchSize)

	parts := []*ragged.Batch[T]{startColumns}
	idParts := []*ragged.Batch[int32]{ragged.FullLike(startColumns, int32(0))}

	for i, seg := range segments {
		parts = append(parts, seg)
		idParts = append(idParts, ragged.FullLike(seg, int32(i)))

		// The delimiter after the final segment is EndValue; every
		// other delimiter is SepValue. Both carry the id of the
		// segment they follow.
		if i == len(segments)-1 {
			parts = append(parts, endColumns)
			idParts = append(idParts, ragged.FullLike(endColumns, int32(i)))
		} else {
			parts = append(parts, sepColumns)
			idParts = append(idParts, ragged.FullLike(sepColumns, int32(i)))
		}
	}

	tokens, err := ragged.ConcatRows(parts...)
	if err != nil {
		return nil, nil, err
	}
	segmentIDs, err := ragged.ConcatRows(idParts...)
	if err != nil {
		return nil, nil, err
	}
	return tokens, segmentIDs, nil
}

// PaddingMask derives the BERT-style padding mask from a packed token
// matrix: true at content positions, false where the pad value appears.
// The pad value must not collide with real content tokens.
func PaddingMask[T ragged.Token](tokens *ragged.Matrix[T], pad T) [][]bool {
	mask := make([][]bool, tokens.Rows())
	for i := range mask {
		row := tokens.Row(i)
		mask[i] = make([]bool, len(row))
		for j, v := range row {
			mask[i][j] = v != pad
		}
	}
	return mask
}
