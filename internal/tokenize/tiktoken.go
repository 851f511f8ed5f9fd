// Package tokenize provides a minimal tiktoken-backed encoder for turning
// text into packer-ready token ids.
//
// Packing itself is tokenizer-agnostic; this package exists so the CLI
// and examples can produce real token ids without depending on a full
// tokenization stack.
package tokenize

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// encodingCL100kBase is the encoding name for GPT-4 and GPT-3.5-turbo.
	encodingCL100kBase = "cl100k_base"
	// endOfTextCL100kBase is the <|endoftext|> id for cl100k_base.
	endOfTextCL100kBase int32 = 100257
)

// DefaultEncoding is the encoding used when none is specified.
const DefaultEncoding = encodingCL100kBase

// Encoder converts text into int32 token ids suitable for packing.
type Encoder struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// New creates an Encoder for the named tiktoken encoding.
//
// Supported encodings include "cl100k_base" (GPT-4) and "p50k_base" (GPT-3).
func New(encodingName string) (*Encoder, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &Encoder{encoding: encoding, name: encodingName}, nil
}

// Name returns the encoding name.
func (e *Encoder) Name() string {
	return e.name
}

// Encode converts text to token ids.
func (e *Encoder) Encode(text string) []int32 {
	tokens := e.encoding.Encode(text, nil, nil)

	result := make([]int32, len(tokens))
	for i, tok := range tokens {
		result[i] = int32(tok) //nolint:gosec // G115: Token ID fits in int32 - vocab size < 2^31.
	}
	return result
}

// Decode converts token ids back to text.
func (e *Encoder) Decode(tokens []int32) string {
	intTokens := make([]int, len(tokens))
	for i, tok := range tokens {
		intTokens[i] = int(tok)
	}
	return e.encoding.Decode(intTokens)
}

// EndOfText returns the <|endoftext|> token id for the encoding, usable
// as a start/end delimiter when packing. Returns -1 when unknown.
func (e *Encoder) EndOfText() int32 {
	switch e.name {
	case encodingCL100kBase:
		return endOfTextCL100kBase
	case "p50k_base", "r50k_base":
		return 50256
	default:
		return -1
	}
}
