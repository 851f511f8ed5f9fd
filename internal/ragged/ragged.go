// Package ragged provides jagged and rectangular batch containers for
// token sequences.
//
// A Batch holds a batch of variable-length rows in a single flat buffer
// indexed by row splits, mirroring the row_splits convention of ragged
// tensors. A Matrix is the dense rectangular counterpart produced after
// padding.
package ragged

import "fmt"

// Token is a constraint for supported token element types.
// Segments carry either integer token ids or string tokens.
type Token interface {
	~int32 | ~int64 | ~string
}

// Batch is a jagged 2-D container: a batch of rows with independent lengths.
//
// Rows are stored back to back in a flat value buffer; splits[i] is the
// offset of row i, so row i occupies values[splits[i]:splits[i+1]].
type Batch[T Token] struct {
	values []T
	splits []int
}

// FromRows creates a Batch from a slice of rows.
// The row contents are copied into the batch's flat buffer.
func FromRows[T Token](rows [][]T) *Batch[T] {
	splits := make([]int, len(rows)+1)
	total := 0
	for i, row := range rows {
		total += len(row)
		splits[i+1] = total
	}

	values := make([]T, 0, total)
	for _, row := range rows {
		values = append(values, row...)
	}

	return &Batch[T]{values: values, splits: splits}
}

// FromDense creates a Batch from rectangular row-major data.
// Every row of the result has length cols; no value is treated as padding.
func FromDense[T Token](data []T, rows, cols int) (*Batch[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("dense shape [%d, %d] has negative dimension", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("dense shape [%d, %d] requires %d values, but got %d", rows, cols, rows*cols, len(data))
	}

	splits := make([]int, rows+1)
	for i := 1; i <= rows; i++ {
		splits[i] = i * cols
	}

	values := make([]T, len(data))
	copy(values, data)

	return &Batch[T]{values: values, splits: splits}, nil
}

// FromMatrix creates a Batch from a dense Matrix.
// Every row keeps its full width; padding is not stripped.
func FromMatrix[T Token](m *Matrix[T]) *Batch[T] {
	b, err := FromDense(m.data, m.rows, m.cols)
	if err != nil {
		// Matrix construction already validated the shape.
		panic(err)
	}
	return b
}

// Repeat creates a Batch of n identical rows.
// Used for broadcasting delimiter values across a batch.
func Repeat[T Token](row []T, n int) *Batch[T] {
	splits := make([]int, n+1)
	values := make([]T, 0, n*len(row))
	for i := 1; i <= n; i++ {
		splits[i] = i * len(row)
		values = append(values, row...)
	}
	return &Batch[T]{values: values, splits: splits}
}

// FullLike returns a batch with the same row structure as b, with every
// value replaced by v.
func FullLike[T, U Token](b *Batch[T], v U) *Batch[U] {
	values := make([]U, len(b.values))
	for i := range values {
		values[i] = v
	}
	splits := make([]int, len(b.splits))
	copy(splits, b.splits)
	return &Batch[U]{values: values, splits: splits}
}

// NumRows returns the number of rows in the batch.
func (b *Batch[T]) NumRows() int {
	return len(b.splits) - 1
}

// RowLen returns the length of row i.
func (b *Batch[T]) RowLen(i int) int {
	return b.splits[i+1] - b.splits[i]
}

// Row returns row i as a view into the flat buffer.
//
// WARNING: Modifications to the returned slice will modify the batch.
func (b *Batch[T]) Row(i int) []T {
	return b.values[b.splits[i]:b.splits[i+1]]
}

// Rows returns a copy of all rows.
func (b *Batch[T]) Rows() [][]T {
	rows := make([][]T, b.NumRows())
	for i := range rows {
		row := make([]T, b.RowLen(i))
		copy(row, b.Row(i))
		rows[i] = row
	}
	return rows
}

// Lens returns the per-row lengths.
func (b *Batch[T]) Lens() []int {
	lens := make([]int, b.NumRows())
	for i := range lens {
		lens[i] = b.RowLen(i)
	}
	return lens
}

// NumValues returns the total number of values across all rows.
func (b *Batch[T]) NumValues() int {
	return len(b.values)
}

// Truncate returns a new Batch whose row i is the prefix of length lens[i]
// of the receiver's row i. Lengths must not exceed the current row lengths.
func (b *Batch[T]) Truncate(lens []int) (*Batch[T], error) {
	if len(lens) != b.NumRows() {
		return nil, fmt.Errorf("truncate needs %d lengths, but got %d", b.NumRows(), len(lens))
	}

	rows := make([][]T, b.NumRows())
	for i, n := range lens {
		if n < 0 || n > b.RowLen(i) {
			return nil, fmt.Errorf("truncate length %d for row %d of length %d", n, i, b.RowLen(i))
		}
		rows[i] = b.Row(i)[:n]
	}
	return FromRows(rows), nil
}

// ConcatRows concatenates batches row-wise: row i of the result is the
// concatenation of row i of every input, left to right.
// All batches must have the same number of rows.
func ConcatRows[T Token](batches ...*Batch[T]) (*Batch[T], error) {
	if len(batches) == 0 {
		return nil, fmt.Errorf("concat: at least one batch required")
	}

	n := batches[0].NumRows()
	total := 0
	for _, b := range batches {
		if b.NumRows() != n {
			return nil, fmt.Errorf("concat: row count mismatch: %d vs %d", n, b.NumRows())
		}
		total += b.NumValues()
	}

	values := make([]T, 0, total)
	splits := make([]int, n+1)
	for i := 0; i < n; i++ {
		for _, b := range batches {
			values = append(values, b.Row(i)...)
		}
		splits[i+1] = len(values)
	}
	return &Batch[T]{values: values, splits: splits}, nil
}

// ToMatrix converts the batch to a dense Matrix of the given width.
// Rows shorter than width are right-padded with pad; rows longer than
// width are an error.
func (b *Batch[T]) ToMatrix(width int, pad T) (*Matrix[T], error) {
	if width < 0 {
		return nil, fmt.Errorf("dense width must be non-negative, got %d", width)
	}

	n := b.NumRows()
	data := make([]T, n*width)
	for i := 0; i < n; i++ {
		row := b.Row(i)
		if len(row) > width {
			return nil, fmt.Errorf("row %d of length %d exceeds dense width %d", i, len(row), width)
		}
		dst := data[i*width : (i+1)*width]
		copy(dst, row)
		for j := len(row); j < width; j++ {
			dst[j] = pad
		}
	}
	return &Matrix[T]{data: data, rows: n, cols: width}, nil
}
