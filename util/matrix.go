package util

import (
	"encoding/json"

	"golang.org/x/exp/constraints"
)

//*******************************************
// dense matrix
//*******************************************

type Number interface {
	constraints.Integer | constraints.Float
}

// Dense row-major matrix.
type Matrix[T Number] struct {
	data Array[T]
	rows int
	cols int
}

func NewMatrix[T Number](rows, cols int) Matrix[T] {
	return Matrix[T]{
		data: NewArray[T](rows * cols),
		rows: rows,
		cols: cols,
	}
}

// Creates a matrix from nested rows, all rows must have the same length.
func MatrixFromRows[T Number](rows [][]T) Matrix[T] {
	if len(rows) == 0 {
		return NewMatrix[T](0, 0)
	}
	mat := NewMatrix[T](len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != mat.cols {
			panic("rows of different length")
		}
		copy(mat.data[i*mat.cols:(i+1)*mat.cols], row)
	}
	return mat
}

func (self Matrix[T]) Get(row, col int) T {
	return self.data[row*self.cols+col]
}
func (self Matrix[T]) Set(row, col int, value T) {
	self.data[row*self.cols+col] = value
}
func (self Matrix[T]) Rows() int {
	return self.rows
}
func (self Matrix[T]) Cols() int {
	return self.cols
}
func (self Matrix[T]) IsSquare() bool {
	return self.rows == self.cols
}

// Returns a view onto the row, changes are reflected in the matrix.
func (self Matrix[T]) Row(row int) Array[T] {
	return self.data[row*self.cols : (row+1)*self.cols]
}

func (self Matrix[T]) Col(col int) Array[T] {
	arr := NewArray[T](self.rows)
	for i := 0; i < self.rows; i++ {
		arr[i] = self.Get(i, col)
	}
	return arr
}

func (self Matrix[T]) Copy() Matrix[T] {
	return Matrix[T]{
		data: self.data.Copy(),
		rows: self.rows,
		cols: self.cols,
	}
}

func (self Matrix[T]) ToRows() [][]T {
	rows := make([][]T, self.rows)
	for i := 0; i < self.rows; i++ {
		rows[i] = self.Row(i).Copy()
	}
	return rows
}

func (self Matrix[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.ToRows())
}
func (self *Matrix[T]) UnmarshalJSON(data []byte) error {
	var rows [][]T
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	*self = MatrixFromRows(rows)
	return nil
}
