package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/tsp"
)

func TestNewCostMatrix_Validation(t *testing.T) {
	_, err := tsp.NewCostMatrix(tsp.DenseModel{{inf}})
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.NewCostMatrix(tsp.DenseModel{{0, math.NaN()}, {1, 0}})
	mustErrIs(t, err, tsp.ErrInvalidWeight)

	_, err = tsp.NewCostMatrix(tsp.DenseModel{{0, -1}, {1, 0}})
	mustErrIs(t, err, tsp.ErrNegativeWeight)

	// Diagonal values are ignored and forced to +Inf.
	cm, err := tsp.NewCostMatrix(tsp.DenseModel{{0, 3}, {4, 0}})
	require.NoError(t, err)
	assert.True(t, math.IsInf(cm.At(0, 0), 1))
	assert.True(t, math.IsInf(cm.At(1, 1), 1))
	assert.Equal(t, 3.0, cm.At(0, 1))
}

func TestReduce_SampleMatrix(t *testing.T) {
	cm, err := tsp.NewCostMatrix(sampleMatrix())
	require.NoError(t, err)

	red := cm.Reduce()
	// Row minima 10+5+6+8 = 29 leave
	//   [∞,0,5,10] [0,∞,4,5] [0,7,∞,6] [0,0,1,∞]
	// whose column minima 0+0+1+5 add 6.
	assert.Equal(t, 35.0, red.Delta)
	assert.Zero(t, red.DeadRows)
	assert.Zero(t, red.DeadCols)

	// Every live row and column holds a zero afterwards.
	n := cm.Len()
	for i := 0; i < n; i++ {
		var rowZero, colZero bool
		for j := 0; j < n; j++ {
			rowZero = rowZero || cm.At(i, j) == 0
			colZero = colZero || cm.At(j, i) == 0
			if !math.IsInf(cm.At(i, j), 1) {
				assert.GreaterOrEqual(t, cm.At(i, j), 0.0)
			}
		}
		assert.True(t, rowZero, "row %d", i)
		assert.True(t, colZero, "col %d", i)
	}
}

func TestReduce_Idempotent(t *testing.T) {
	cm, err := tsp.NewCostMatrix(randomAsym(9, 0.2, seedDet))
	require.NoError(t, err)
	first := cm.Reduce()
	second := cm.Reduce()
	assert.Zero(t, second.Delta)
	assert.Equal(t, first.DeadRows, second.DeadRows)
	assert.Equal(t, first.DeadCols, second.DeadCols)
}

func TestReduce_DeadRowsAndCols(t *testing.T) {
	// City 2 cannot be left: row 2 is dead.
	m := tsp.DenseModel{
		{inf, 1, 2},
		{1, inf, 2},
		{inf, inf, inf},
	}
	cm, err := tsp.NewCostMatrix(m)
	require.NoError(t, err)
	red := cm.Reduce()
	assert.Equal(t, 1, red.DeadRows)
	assert.Zero(t, red.DeadCols)
}

func TestFixEdge(t *testing.T) {
	cm, err := tsp.NewCostMatrix(sampleMatrix())
	require.NoError(t, err)
	cl := cm.Clone()

	edge := cl.FixEdge(0, 2)
	assert.Equal(t, 15.0, edge)
	for k := 0; k < cl.Len(); k++ {
		assert.True(t, math.IsInf(cl.At(0, k), 1), "row 0 col %d", k)
		assert.True(t, math.IsInf(cl.At(k, 2), 1), "row %d col 2", k)
	}
	assert.True(t, math.IsInf(cl.At(2, 0), 1), "2-cycle must be banned")

	// The original is untouched by mutations of the clone.
	assert.Equal(t, 15.0, cm.At(0, 2))
	assert.Equal(t, 6.0, cm.At(2, 0))

	// One edge closes exactly one row and one column.
	red := cl.Reduce()
	assert.Equal(t, 1, red.DeadRows)
	assert.Equal(t, 1, red.DeadCols)
}
