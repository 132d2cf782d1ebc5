package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/ttpr0/go-access/util"
)

func testCosts() Matrix[float64] {
	return MatrixFromRows([][]float64{
		{1, 2, 3},
		{2, 1, 4},
		{3, 4, 1},
	})
}

func TestExclude(t *testing.T) {
	seq := []int{5, 6, 7, 8}
	assert.Equal(t, []int{6, 7, 8}, Exclude(seq, 0))
	assert.Equal(t, []int{5, 6, 8}, Exclude(seq, 2))
	assert.Equal(t, []int{5, 6, 7}, Exclude(seq, 3))
	assert.Equal(t, []int{5, 6, 7, 8}, seq)
}

func TestAccess2(t *testing.T) {
	A, err := Access2(Array[float64]{10, 20, 30}, testCosts())
	require.NoError(t, err)
	assert.InDelta(t, 20.0/3, A[0], 1e-9)
	assert.InDelta(t, (5.0+7.5)/3, A[1], 1e-9)
	assert.InDelta(t, (10.0/3+5)/3, A[2], 1e-9)

	_, err = Access2(Array[float64]{10, 20}, testCosts())
	assert.ErrorIs(t, err, ErrDimension)
}

func TestAccess1(t *testing.T) {
	T := MatrixFromRows([][]float64{
		{100, 10, 30},
		{4, 0, 4},
		{0, 0, 7},
	})
	A, err := Access1(T, testCosts())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNumericDomain))

	T.Set(2, 0, 3)
	A, err = Access1(T, testCosts())
	require.NoError(t, err)
	assert.InDelta(t, (10.0/2+30.0/3)/40, A[0], 1e-9)
	assert.InDelta(t, (4.0/2+4.0/4)/8, A[1], 1e-9)
	assert.InDelta(t, 1.0/3, A[2], 1e-9)

	_, err = Access1(NewMatrix[float64](2, 2), testCosts())
	assert.ErrorIs(t, err, ErrDimension)
}

func TestGravityRowSums(t *testing.T) {
	E := Array[float64]{10, 20, 30}
	P := Array[float64]{100, 50, 25}
	T, err := Gravity(testCosts(), E, P, 0.5)
	require.NoError(t, err)
	sums := RowSums(T)
	for i := range P {
		assert.InDelta(t, P[i], sums[i], 1e-9)
	}
	// cheaper destinations attract more per unit of employment
	assert.Greater(t, T.Get(0, 1)/E[1], T.Get(0, 2)/E[2])

	// beta = 0 distributes proportional to employment
	T, err = Gravity(testCosts(), E, P, 0)
	require.NoError(t, err)
	assert.InDelta(t, 100.0*10/60, T.Get(0, 0), 1e-9)
}

func TestGravityDomain(t *testing.T) {
	_, err := Gravity(testCosts(), Array[float64]{0, 0, 0}, Array[float64]{1, 1, 1}, 0.1)
	assert.ErrorIs(t, err, ErrNumericDomain)

	_, err = Gravity(testCosts(), Array[float64]{1, 1, 1}, Array[float64]{1, 1, 1}, math.Inf(-1))
	assert.ErrorIs(t, err, ErrNumericDomain)

	_, err = Gravity(MatrixFromRows([][]float64{{1, 2}}), Array[float64]{1}, Array[float64]{1}, 0.1)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestInterveningOpportunities(t *testing.T) {
	E_mat, err := InterveningOpportunities(testCosts(), Array[float64]{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{10, 30, 60},
		{30, 20, 60},
		{40, 60, 30},
	}, E_mat.ToRows())
}

func TestRadiation(t *testing.T) {
	E := Array[float64]{10, 20, 30}
	P := Array[float64]{100, 50, 25}
	T, err := Radiation(testCosts(), E, P)
	require.NoError(t, err)

	out := 100 / (1 - 100.0/175)
	assert.InDelta(t, out*10*20/((10+30)*(10+20+30)), T.Get(0, 1), 1e-9)
	assert.InDelta(t, out*10*10/((10+10)*(10+10+10)), T.Get(0, 0), 1e-9)
	assert.NotEqual(t, T.Get(0, 1), T.Get(1, 0))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.False(t, math.IsNaN(T.Get(i, j)))
		}
	}
}

func TestRadiationDomain(t *testing.T) {
	_, err := Radiation(MatrixFromRows([][]float64{{1}}), Array[float64]{10}, Array[float64]{5})
	assert.ErrorIs(t, err, ErrNumericDomain)

	_, err = Radiation(testCosts(), Array[float64]{0, 0, 0}, Array[float64]{1, 1, 1})
	assert.ErrorIs(t, err, ErrNumericDomain)
}

func TestScaling(t *testing.T) {
	T := MatrixFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	scaled, err := ScaleToEmployment(T, Array[float64]{8, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{8, 3}, []float64(ColSums(scaled)), 1e-9)
	assert.Equal(t, 1.0, T.Get(0, 0))

	scaled, err = ScaleToPopulation(T, Array[float64]{100, 10}, DEFAULT_PARTICIPATION_RATE)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{62.7, 6.27}, []float64(RowSums(scaled)), 1e-9)

	_, err = ScaleToEmployment(MatrixFromRows([][]float64{{0, 1}, {0, 1}}), Array[float64]{1, 1})
	assert.ErrorIs(t, err, ErrNumericDomain)
	_, err = ScaleToPopulation(T, Array[float64]{1}, 1)
	assert.ErrorIs(t, err, ErrDimension)
}
