package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueue(t *testing.T) {
	pq := NewPriorityQueue[int32, float64](4)
	pq.Enqueue(4, 4)
	pq.Enqueue(2, 2)
	pq.Enqueue(1, 1)
	pq.Enqueue(3, 3)

	for _, want := range []int32{1, 2, 3, 4} {
		item, ok := pq.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, want, item)
	}
	_, ok := pq.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, pq.Length())
}

func TestMatrixRowView(t *testing.T) {
	mat := NewMatrix[float64](2, 3)
	mat.Set(1, 2, 5)
	row := mat.Row(1)
	assert.Equal(t, Array[float64]{0, 0, 5}, row)
	row[0] = 7
	assert.Equal(t, 7.0, mat.Get(1, 0))
	assert.Equal(t, Array[float64]{0, 0}, mat.Col(1))
	assert.False(t, mat.IsSquare())
}

func TestFlagsReset(t *testing.T) {
	flags := NewFlags[int32](3, -1)
	*flags.Get(1) = 5
	assert.Equal(t, int32(5), *flags.Get(1))
	flags.Reset()
	assert.Equal(t, int32(-1), *flags.Get(1))
}

func TestOptional(t *testing.T) {
	assert.False(t, None[int]().HasValue())
	opt := Some(3)
	assert.True(t, opt.HasValue())
	assert.Equal(t, 3, opt.Value)
}
