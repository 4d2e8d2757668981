package geo_test

import (
	"context"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/tsp"
)

var _ tsp.CostModel = (*geo.Model)(nil)

func TestNewModel_Easy(t *testing.T) {
	cities := []geo.City{
		{Point: orb.Point{0, 0}, Elevation: 0.2},
		{Point: orb.Point{0.3, 0.4}},
		{Point: orb.Point{0, 0.4}},
	}
	m, err := geo.NewModel(cities, geo.Easy, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.InDelta(t, 500.0, m.Cost(0, 1), 1e-9)
	assert.InDelta(t, 500.0, m.Cost(1, 0), 1e-9)
	assert.InDelta(t, 300.0, m.Cost(1, 2), 1e-9)
	assert.True(t, math.IsInf(m.Cost(2, 2), 1))

	// Easy mode drops elevations and renumbers cities.
	for i, c := range m.Cities() {
		assert.Equal(t, i, c.ID)
		assert.Zero(t, c.Elevation)
	}
}

func TestNewModel_NormalIsAsymmetric(t *testing.T) {
	cities := []geo.City{
		{Point: orb.Point{0, 0}, Elevation: 0},
		{Point: orb.Point{0.3, 0.4}, Elevation: 0.1},
	}
	m, err := geo.NewModel(cities, geo.Normal, nil)
	require.NoError(t, err)

	// Uphill: 0.5 + 0.1, downhill: 0.5 - 0.05.
	assert.InDelta(t, 600.0, m.Cost(0, 1), 1e-9)
	assert.InDelta(t, 450.0, m.Cost(1, 0), 1e-9)
}

func TestNewModel_Errors(t *testing.T) {
	_, err := geo.NewModel([]geo.City{{}}, geo.Easy, nil)
	require.ErrorIs(t, err, geo.ErrTooFewCities)

	two := []geo.City{{Point: orb.Point{0, 0}}, {Point: orb.Point{1, 1}}}
	_, err = geo.NewModel(two, geo.Mode(7), nil)
	require.ErrorIs(t, err, geo.ErrUnknownMode)

	_, err = geo.NewModel(two, geo.Hard, []geo.Edge{{From: 0, To: 0}})
	require.ErrorIs(t, err, geo.ErrEdgeOutOfRange)

	_, err = geo.NewModel(two, geo.Hard, []geo.Edge{{From: 0, To: 2}})
	require.ErrorIs(t, err, geo.ErrEdgeOutOfRange)

	bad := []geo.City{{Point: orb.Point{math.NaN(), 0}}, {Point: orb.Point{1, 1}}}
	_, err = geo.NewModel(bad, geo.Easy, nil)
	require.ErrorIs(t, err, geo.ErrInvalidCity)
}

func TestGenerate(t *testing.T) {
	a, err := geo.Generate(20, geo.Hard, 5)
	require.NoError(t, err)
	b, err := geo.Generate(20, geo.Hard, 5)
	require.NoError(t, err)
	assert.Equal(t, a.Cities(), b.Cities(), "same seed, same cities")
	assert.Equal(t, a.Removed(), b.Removed())

	removed := a.Removed()
	assert.Len(t, removed, 4)
	for _, e := range removed {
		assert.NotEqual(t, e.From, e.To)
		assert.True(t, math.IsInf(a.Cost(e.From, e.To), 1))
	}

	for _, c := range a.Cities() {
		assert.GreaterOrEqual(t, c.X(), 0.0)
		assert.Less(t, c.X(), 1.0)
		assert.GreaterOrEqual(t, c.Elevation, 0.0)
		assert.Less(t, c.Elevation, geo.MaxElevation)
	}

	easy, err := geo.Generate(10, geo.Easy, 5)
	require.NoError(t, err)
	assert.Empty(t, easy.Removed())
	for i := 0; i < easy.Len(); i++ {
		for j := 0; j < easy.Len(); j++ {
			assert.Equal(t, easy.Cost(i, j), easy.Cost(j, i))
		}
	}

	_, err = geo.Generate(1, geo.Easy, 1)
	require.ErrorIs(t, err, geo.ErrTooFewCities)
}

func TestGenerate_SolvesToOptimum(t *testing.T) {
	m, err := geo.Generate(9, geo.Normal, 3)
	require.NoError(t, err)

	res, err := tsp.Solve(context.Background(), m, tsp.DefaultOptions())
	require.NoError(t, err)
	_, want, err := tsp.SolveExact(m, 0)
	require.NoError(t, err)
	assert.InDelta(t, want, res.Cost, 1e-6)
}

func TestParseMode(t *testing.T) {
	for _, mode := range []geo.Mode{geo.Easy, geo.Normal, geo.Hard} {
		got, err := geo.ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	got, err := geo.ParseMode(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, geo.Hard, got)

	got, err = geo.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, geo.Easy, got)

	_, err = geo.ParseMode("brutal")
	require.ErrorIs(t, err, geo.ErrUnknownMode)
	assert.Equal(t, "mode(9)", geo.Mode(9).String())
}

func TestSummary(t *testing.T) {
	m, err := geo.Generate(6, geo.Normal, 2)
	require.NoError(t, err)
	s := m.Summary()
	assert.Equal(t, 6, s.Cities)
	assert.Equal(t, "normal", s.Mode)
	assert.LessOrEqual(t, s.MinElevation, s.MaxElevation)
	assert.Greater(t, s.MeanCost, 0.0)
}
