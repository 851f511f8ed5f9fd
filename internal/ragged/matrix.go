package ragged

import "fmt"

// Matrix is a dense rectangular container with row-major storage.
type Matrix[T Token] struct {
	data []T
	rows int
	cols int
}

// NewMatrix creates a Matrix from row-major data.
func NewMatrix[T Token](data []T, rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("matrix shape [%d, %d] has negative dimension", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix shape [%d, %d] requires %d values, but got %d", rows, cols, rows*cols, len(data))
	}

	values := make([]T, len(data))
	copy(values, data)

	return &Matrix[T]{data: values, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	return m.data[i*m.cols+j]
}

// Row returns row i as a view into the flat buffer.
//
// WARNING: Modifications to the returned slice will modify the matrix.
func (m *Matrix[T]) Row(i int) []T {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Data returns the flat row-major data.
//
// WARNING: Modifications to the returned slice will modify the matrix.
func (m *Matrix[T]) Data() []T {
	return m.data
}
