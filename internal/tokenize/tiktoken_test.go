package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidEncoding(t *testing.T) {
	enc, err := New("invalid_encoding_xyz")
	assert.Error(t, err)
	assert.Nil(t, enc)
}

func TestEncoder_RoundTrip(t *testing.T) {
	enc, err := New(DefaultEncoding)
	require.NoError(t, err)
	assert.Equal(t, DefaultEncoding, enc.Name())

	tokens := enc.Encode("Hello, world!")
	require.NotEmpty(t, tokens)

	text := enc.Decode(tokens)
	assert.Equal(t, "Hello, world!", text)
}

func TestEncoder_EndOfText(t *testing.T) {
	enc, err := New(DefaultEncoding)
	require.NoError(t, err)
	assert.Equal(t, int32(100257), enc.EndOfText())
}
