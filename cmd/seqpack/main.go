// Package main provides the seqpack CLI.
//
// It encodes each argument with a tiktoken encoding and packs the
// resulting segments into a single fixed width sequence, printing the
// packed token ids and segment ids.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/seqpack-ml/seqpack/internal/tokenize"
	"github.com/seqpack-ml/seqpack/packer"
	"github.com/seqpack-ml/seqpack/trim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("seqpack %s\n", version)
		return
	}

	var (
		length   = flag.Int("length", 32, "Output sequence length")
		encoding = flag.String("encoding", tokenize.DefaultEncoding, "tiktoken encoding name")
		truncate = flag.String("truncate", "round_robin", "Truncation strategy (round_robin or waterfall)")
		pad      = flag.Int("pad", 0, "Pad token id")
	)
	flag.Parse()

	texts := flag.Args()
	if len(texts) == 0 {
		fmt.Fprintln(os.Stderr, "error: at least one text segment required")
		fmt.Fprintln(os.Stderr, "usage: seqpack [flags] TEXT [TEXT...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	strategy, err := trim.ParseStrategy(*truncate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	enc, err := tokenize.New(*encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	delimiter := enc.EndOfText()
	p, err := packer.New(packer.Config[int32]{
		SequenceLength: *length,
		StartValue:     []int32{delimiter},
		EndValue:       []int32{delimiter},
		PadValue:       int32(*pad), //nolint:gosec // G115: Token ID fits in int32 - vocab size < 2^31.
		Truncate:       strategy,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	segments := make([][]int32, len(texts))
	for i, text := range texts {
		segments[i] = enc.Encode(text)
		fmt.Printf("segment %d: %d tokens\n", i, len(segments[i]))
	}

	tokens, segmentIDs, err := p.Pack(segments...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\ntoken ids:   %v\n", tokens)
	fmt.Printf("segment ids: %v\n", segmentIDs)
}
