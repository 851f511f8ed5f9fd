// Package packer packs variable-length token segments into fixed width
// model inputs.
//
// The MultiSegmentPacker implements the BERT packing convention: segments
// are truncated to a shared budget, joined with start/sep/end delimiter
// tokens, labeled with segment ids, and padded to a fixed sequence length.
//
// Example usage:
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
