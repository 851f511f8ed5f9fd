package packer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqpack-ml/seqpack/packer"
	"github.com/seqpack-ml/seqpack/ragged"
)

func TestPublicAPI_PackPair(t *testing.T) {
	p, err := packer.New(packer.Config[int32]{
		SequenceLength: 8,
		StartValue:     []int32{101},
		EndValue:       []int32{102},
	})
	require.NoError(t, err)

	tokens, segmentIDs, err := p.Pack(
		[]int32{1, 2, 3, 4},
		[]int32{11, 12, 13, 14},
	)
	require.NoError(t, err)
	assert.Equal(t, []int32{101, 1, 2, 3, 102, 11, 12, 102}, tokens)
	assert.Equal(t, []int32{0, 0, 0, 0, 0, 1, 1, 1}, segmentIDs)
}

func TestPublicAPI_PackBatchWithMask(t *testing.T) {
	p, err := packer.New(packer.Config[int32]{
		SequenceLength: 6,
		StartValue:     []int32{101},
		EndValue:       []int32{102},
		PadValue:       -1,
	})
	require.NoError(t, err)

	batch := ragged.FromRows([][]int32{
		{1, 2},
		{3, 4, 5, 6, 7},
	})

	tokens, _, err := p.PackBatch(batch)
	require.NoError(t, err)
	assert.Equal(t, []int32{101, 1, 2, 102, -1, -1}, tokens.Row(0))
	assert.Equal(t, []int32{101, 3, 4, 5, 6, 102}, tokens.Row(1))

	mask := packer.PaddingMask(tokens, int32(-1))
	assert.Equal(t, []bool{true, true, true, true, false, false}, mask[0])
	assert.Equal(t, []bool{true, true, true, true, true, true}, mask[1])
}

func TestPublicAPI_Errors(t *testing.T) {
	_, err := packer.New(packer.Config[int32]{
		SequenceLength: 8,
		StartValue:     []int32{101},
		EndValue:       []int32{102},
		Truncate:       "bogus",
	})
	assert.ErrorIs(t, err, packer.ErrUnknownStrategy)
}
