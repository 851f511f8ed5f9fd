// Package ragged provides the jagged and dense batch containers used by
// seqpack.
//
// This package wraps the internal container implementations and provides
// a clean public API for building packer inputs and reading its outputs.
//
// Example usage:
//
//	import "github.com/seqpack-ml/seqpack/ragged"
//
//	// A batch of two examples with different lengths.
//	batch := ragged.FromRows([][]int32{
//	    {1, 2, 3},
//	    {4, 5},
//	})
package ragged

import (
	"github.com/seqpack-ml/seqpack/internal/ragged"
)

// Token is a constraint for supported token element types (integer token
// ids or string tokens).
type Token = ragged.Token

// Batch is a jagged 2-D container: a batch of rows with independent
// lengths, stored as a flat value buffer plus row splits.
type Batch[T Token] = ragged.Batch[T]

// Matrix is a dense rectangular container with row-major storage.
type Matrix[T Token] = ragged.Matrix[T]

// FromRows creates a Batch from a slice of rows.
func FromRows[T Token](rows [][]T) *Batch[T] {
	return ragged.FromRows(rows)
}

// FromDense creates a Batch from rectangular row-major data.
// Every row of the result has length cols; no value is treated as padding.
func FromDense[T Token](data []T, rows, cols int) (*Batch[T], error) {
	return ragged.FromDense(data, rows, cols)
}

// FromMatrix creates a Batch from a dense Matrix.
func FromMatrix[T Token](m *Matrix[T]) *Batch[T] {
	return ragged.FromMatrix(m)
}

// NewMatrix creates a Matrix from row-major data.
func NewMatrix[T Token](data []T, rows, cols int) (*Matrix[T], error) {
	return ragged.NewMatrix(data, rows, cols)
}

// ConcatRows concatenates batches row-wise: row i of the result is the
// concatenation of row i of every input, left to right.
func ConcatRows[T Token](batches ...*Batch[T]) (*Batch[T], error) {
	return ragged.ConcatRows(batches...)
}
