package models

import (
	"fmt"

	"github.com/samber/lo"
	. "github.com/ttpr0/go-access/util"
)

// Returns a copy of seq without the element at position i.
func Exclude[T any](seq []T, i int) []T {
	return lo.Filter(seq, func(_ T, k int) bool {
		return k != i
	})
}

// Flow weighted accessibility.
//
// A_i = sum_{j!=i} T_ij / C_ij / sum_{j!=i} T_ij
func Access1(T Matrix[float64], C Costs) (Array[float64], error) {
	if err := _CheckDimensions(C, nil); err != nil {
		return nil, err
	}
	if T.Rows() != C.Rows() || T.Cols() != C.Cols() {
		return nil, fmt.Errorf("%w: flow matrix is %dx%d, cost matrix is %dx%d", ErrDimension, T.Rows(), T.Cols(), C.Rows(), C.Cols())
	}
	n := C.Rows()
	A := NewArray[float64](n)
	for i := 0; i < n; i++ {
		flows := Exclude(T.Row(i), i)
		costs := Exclude(C.Row(i), i)
		total := lo.Sum(flows)
		if total == 0 {
			return nil, fmt.Errorf("%w: no outgoing flow from %d", ErrNumericDomain, i)
		}
		weighted := float64(0)
		for k, flow := range flows {
			if costs[k] <= 0 {
				return nil, fmt.Errorf("%w: non-positive cost from %d", ErrNumericDomain, i)
			}
			weighted += flow / costs[k]
		}
		A[i] = weighted / total
	}
	return A, nil
}

// Opportunity based accessibility.
//
// A_i = sum_{j!=i} E_j / C_ij / n
func Access2(E Array[float64], C Costs) (Array[float64], error) {
	if err := _CheckDimensions(C, map[string][]float64{"E": E}); err != nil {
		return nil, err
	}
	n := C.Rows()
	A := NewArray[float64](n)
	for i := 0; i < n; i++ {
		opportunities := Exclude(E, i)
		costs := Exclude(C.Row(i), i)
		sum := float64(0)
		for k, e := range opportunities {
			if costs[k] <= 0 {
				return nil, fmt.Errorf("%w: non-positive cost from %d", ErrNumericDomain, i)
			}
			sum += e / costs[k]
		}
		A[i] = sum / float64(n)
	}
	return A, nil
}
