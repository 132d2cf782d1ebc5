package models

import (
	"errors"
	"fmt"
)

var (
	ErrNumericDomain = errors.New("value outside numeric domain")
	ErrDimension     = errors.New("dimension mismatch")
)

func _DimensionError(name string, got, expected int) error {
	return fmt.Errorf("%w: %s has length %d, expected %d", ErrDimension, name, got, expected)
}

// Checks that C is square and every vector has one entry per row of C.
func _CheckDimensions(C Costs, vectors map[string][]float64) error {
	if !C.IsSquare() {
		return fmt.Errorf("%w: cost matrix is %dx%d", ErrDimension, C.Rows(), C.Cols())
	}
	for name, vec := range vectors {
		if len(vec) != C.Rows() {
			return _DimensionError(name, len(vec), C.Rows())
		}
	}
	return nil
}
