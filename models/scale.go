package models

import (
	"fmt"

	. "github.com/ttpr0/go-access/util"
)

// share of the population commuting to work
const DEFAULT_PARTICIPATION_RATE = 0.627

func RowSums(T Matrix[float64]) Array[float64] {
	sums := NewArray[float64](T.Rows())
	for i := 0; i < T.Rows(); i++ {
		for j := 0; j < T.Cols(); j++ {
			sums[i] += T.Get(i, j)
		}
	}
	return sums
}

func ColSums(T Matrix[float64]) Array[float64] {
	sums := NewArray[float64](T.Cols())
	for i := 0; i < T.Rows(); i++ {
		for j := 0; j < T.Cols(); j++ {
			sums[j] += T.Get(i, j)
		}
	}
	return sums
}

// Scales every column j of a copy of T to sum up to E_j.
func ScaleToEmployment(T Matrix[float64], E Array[float64]) (Matrix[float64], error) {
	if E.Length() != T.Cols() {
		return Matrix[float64]{}, _DimensionError("E", E.Length(), T.Cols())
	}
	scaled := T.Copy()
	sums := ColSums(T)
	for j, sum := range sums {
		if sum == 0 {
			return Matrix[float64]{}, fmt.Errorf("%w: column %d has no flow", ErrNumericDomain, j)
		}
		factor := E[j] / sum
		for i := 0; i < T.Rows(); i++ {
			scaled.Set(i, j, T.Get(i, j)*factor)
		}
	}
	return scaled, nil
}

// Scales every row i of a copy of T to sum up to rate * P_i.
func ScaleToPopulation(T Matrix[float64], P Array[float64], rate float64) (Matrix[float64], error) {
	if P.Length() != T.Rows() {
		return Matrix[float64]{}, _DimensionError("P", P.Length(), T.Rows())
	}
	scaled := T.Copy()
	sums := RowSums(T)
	for i, sum := range sums {
		if sum == 0 {
			return Matrix[float64]{}, fmt.Errorf("%w: row %d has no flow", ErrNumericDomain, i)
		}
		factor := rate * P[i] / sum
		for j := 0; j < T.Cols(); j++ {
			scaled.Set(i, j, T.Get(i, j)*factor)
		}
	}
	return scaled, nil
}
