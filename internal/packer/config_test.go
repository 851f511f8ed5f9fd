package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqpack-ml/seqpack/internal/trim"
)

func TestConfig_JSONRoundTrip(t *testing.T) {
	cfg := Config[int32]{
		SequenceLength: 12,
		StartValue:     []int32{101},
		EndValue:       []int32{102},
		SepValue:       []int32{102, 102},
		PadValue:       -1,
		Truncate:       trim.WaterfallStrategy,
	}

	data, err := cfg.ToJSON()
	require.NoError(t, err)

	got, err := ConfigFromJSON[int32](data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfig_RoundTripProducesIdenticalOutput(t *testing.T) {
	original := mustNew(t, Config[int32]{
		SequenceLength: 10,
		StartValue:     []int32{101},
		EndValue:       []int32{102},
		PadValue:       -1,
		Truncate:       trim.RoundRobinStrategy,
	})

	data, err := original.Config().ToJSON()
	require.NoError(t, err)

	cfg, err := ConfigFromJSON[int32](data)
	require.NoError(t, err)
	rebuilt, err := New(cfg)
	require.NoError(t, err)

	segments := [][]int32{
		{1, 2, 3, 4, 5, 6},
		{11, 12, 13},
	}

	wantTokens, wantIDs, err := original.Pack(segments...)
	require.NoError(t, err)
	gotTokens, gotIDs, err := rebuilt.Pack(segments...)
	require.NoError(t, err)

	assert.Equal(t, wantTokens, gotTokens)
	assert.Equal(t, wantIDs, gotIDs)
}

func TestConfig_JSONRoundTrip_StringTokens(t *testing.T) {
	cfg := Config[string]{
		SequenceLength: 8,
		StartValue:     []string{"[CLS]"},
		EndValue:       []string{"[SEP]"},
		PadValue:       "[PAD]",
	}

	data, err := cfg.ToJSON()
	require.NoError(t, err)

	got, err := ConfigFromJSON[string](data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfig_OmittedSepStaysOmitted(t *testing.T) {
	cfg := Config[int32]{
		SequenceLength: 8,
		StartValue:     []int32{101},
		EndValue:       []int32{102},
	}

	data, err := cfg.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sep_value")

	got, err := ConfigFromJSON[int32](data)
	require.NoError(t, err)
	assert.Nil(t, got.SepValue)

	// An omitted sep still resolves to the end value when packing.
	p, err := New(got)
	require.NoError(t, err)
	tokens, _, err := p.Pack([]int32{1, 2}, []int32{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int32{101, 1, 2, 102, 3, 4, 102, 0}, tokens)
}

func TestConfigFromJSON_Invalid(t *testing.T) {
	_, err := ConfigFromJSON[int32]([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
