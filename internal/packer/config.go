package packer

import (
	"encoding/json"
	"fmt"

	"github.com/seqpack-ml/seqpack/internal/ragged"
	"github.com/seqpack-ml/seqpack/internal/trim"
)

// Config configures a MultiSegmentPacker.
//
// The zero value is not usable: SequenceLength, StartValue and EndValue
// must be set. All values share the token type T with the packed inputs.
type Config[T ragged.Token] struct {
	// SequenceLength is the exact width of every output row.
	SequenceLength int `json:"sequence_length"`

	// StartValue is placed once at the start of the packed sequence
	// ("[CLS]" for BERT). May be multi-token.
	StartValue []T `json:"start_value"`

	// EndValue is placed after the final segment ("[SEP]" for BERT).
	// May be multi-token.
	EndValue []T `json:"end_value"`

	// SepValue is placed after every segment except the last.
	// If nil, EndValue is used.
	SepValue []T `json:"sep_value,omitempty"`

	// PadValue fills the unused positions after the last segment
	// ("[PAD]" for BERT).
	PadValue T `json:"pad_value"`

	// Truncate selects the budget allocation strategy.
	// Defaults to round_robin when empty.
	Truncate trim.Strategy `json:"truncate,omitempty"`
}

// ToJSON serializes the configuration as a plain key-value record.
func (c Config[T]) ToJSON() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize packer config: %w", err)
	}
	return data, nil
}

// ConfigFromJSON reconstructs a configuration serialized with ToJSON.
// A packer built from the result behaves identically to the original.
func ConfigFromJSON[T ragged.Token](data []byte) (Config[T], error) {
	var c Config[T]
	if err := json.Unmarshal(data, &c); err != nil {
		return Config[T]{}, fmt.Errorf("failed to parse packer config: %w", err)
	}
	return c, nil
}
