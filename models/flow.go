package models

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	. "github.com/ttpr0/go-access/util"
)

type Costs = Matrix[float64]

//*******************************************
// gravity model
//*******************************************

// Singly constrained gravity model.
//
// T_ij = Z_i * P_i * E_j * exp(-beta * C_ij) with Z_i = 1 / sum_j E_j * exp(-beta * C_ij),
// so every row sums to P_i.
func Gravity(C Costs, E, P Array[float64], beta float64) (Matrix[float64], error) {
	if err := _CheckDimensions(C, map[string][]float64{"E": E, "P": P}); err != nil {
		return Matrix[float64]{}, err
	}
	n := C.Rows()
	T := NewMatrix[float64](n, n)
	decay := NewArray[float64](n)
	for i := 0; i < n; i++ {
		sum := float64(0)
		for j := 0; j < n; j++ {
			decay[j] = E[j] * math.Exp(-beta*C.Get(i, j))
			sum += decay[j]
		}
		if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
			return Matrix[float64]{}, fmt.Errorf("%w: balancing sum of row %d is %v", ErrNumericDomain, i, sum)
		}
		z := 1 / sum
		for j := 0; j < n; j++ {
			T.Set(i, j, z*P[i]*decay[j])
		}
	}
	return T, nil
}

//*******************************************
// radiation model
//*******************************************

// Opportunities reachable from i at no more cost than reaching j.
//
// E_mat_ij = sum of E_k over all k with C_ik <= C_ij, including k = i and k = j.
func InterveningOpportunities(C Costs, E Array[float64]) (Matrix[float64], error) {
	if err := _CheckDimensions(C, map[string][]float64{"E": E}); err != nil {
		return Matrix[float64]{}, err
	}
	n := C.Rows()
	E_mat := NewMatrix[float64](n, n)
	for i := 0; i < n; i++ {
		row := C.Row(i)
		for j := 0; j < n; j++ {
			limit := row[j]
			E_mat.Set(i, j, lo.Sum(lo.Filter(E, func(_ float64, k int) bool {
				return row[k] <= limit
			})))
		}
	}
	return E_mat, nil
}

// Parameter-free radiation model.
//
// T_ij = P_i / (1 - P_i / sum(P)) * E_i * E_j / ((E_i + E_mat_ij) * (E_i + E_j + E_mat_ij))
func Radiation(C Costs, E, P Array[float64]) (Matrix[float64], error) {
	if err := _CheckDimensions(C, map[string][]float64{"E": E, "P": P}); err != nil {
		return Matrix[float64]{}, err
	}
	E_mat, err := InterveningOpportunities(C, E)
	if err != nil {
		return Matrix[float64]{}, err
	}
	n := C.Rows()
	total := lo.Sum(P)
	T := NewMatrix[float64](n, n)
	for i := 0; i < n; i++ {
		if P[i] >= total {
			return Matrix[float64]{}, fmt.Errorf("%w: population of %d is not less than the total population", ErrNumericDomain, i)
		}
		out := P[i] / (1 - P[i]/total)
		for j := 0; j < n; j++ {
			e_mat := E_mat.Get(i, j)
			denom := (E[i] + e_mat) * (E[i] + E[j] + e_mat)
			if denom == 0 {
				return Matrix[float64]{}, fmt.Errorf("%w: zero opportunities between %d and %d", ErrNumericDomain, i, j)
			}
			T.Set(i, j, out*E[i]*E[j]/denom)
		}
	}
	return T, nil
}
