package problem_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/problem"
	"github.com/katalvlaran/tspbb/tsp"
)

const sampleYAML = `
name: sample
start: 0
matrix:
  - [inf, 10, 15, 20]
  - [5, .inf, 9, 10]
  - [6, 13, ∞, 12]
  - [8, 8, 9, "-"]
`

func TestDecode_Matrix(t *testing.T) {
	doc, err := problem.Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "sample", doc.Name)
	assert.Equal(t, 4, doc.Size())

	m, err := doc.Model()
	require.NoError(t, err)
	assert.True(t, math.IsInf(m.Cost(2, 2), 1))
	assert.Equal(t, 13.0, m.Cost(2, 1))

	res, err := tsp.Solve(context.Background(), m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 35.0, res.Cost)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"empty":     {src: "", want: problem.ErrEmpty},
		"no data":   {src: "name: x\n", want: problem.ErrEmpty},
		"ragged":    {src: "matrix:\n  - [inf, 1]\n  - [1]\n", want: problem.ErrRagged},
		"bad edge":  {src: "matrix:\n  - [inf, 1]\n  - [1, inf]\nremoved: [[0, 0]]\n", want: problem.ErrBadEdge},
		"bad start": {src: "start: 5\nmatrix:\n  - [inf, 1]\n  - [1, inf]\n", want: tsp.ErrStartOutOfRange},
		"both": {
			src:  "cities: [{x: 0, y: 0}, {x: 1, y: 1}]\nmatrix:\n  - [inf, 1]\n  - [1, inf]\n",
			want: problem.ErrAmbiguous,
		},
		"bad weight": {src: "matrix:\n  - [inf, abc]\n  - [1, inf]\n", want: problem.ErrBadWeight},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := problem.Decode(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := problem.Decode(strings.NewReader("matrix: []\nbogus: 1\n"))
	require.Error(t, err, "unknown fields are rejected")
}

func TestCities_RoundTrip(t *testing.T) {
	gm, err := geo.Generate(8, geo.Hard, 11)
	require.NoError(t, err)
	doc := problem.FromGeo(gm, "hard8")

	var buf bytes.Buffer
	require.NoError(t, problem.Encode(&buf, &doc))
	back, err := problem.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "hard", back.Mode)
	assert.Len(t, back.Removed, 1)

	m, err := back.Model()
	require.NoError(t, err)
	for i := 0; i < gm.Len(); i++ {
		for j := 0; j < gm.Len(); j++ {
			assert.Equal(t, gm.Cost(i, j), m.Cost(i, j), "cost(%d,%d)", i, j)
		}
	}
}

func TestMatrix_SaveLoad(t *testing.T) {
	inf := math.Inf(1)
	dm := tsp.DenseModel{{inf, 1, 2}, {3, inf, inf}, {4, 5, inf}}
	doc := problem.FromMatrix(dm, "small")
	doc.Start = 2

	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, problem.Save(path, &doc))
	back, err := problem.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, back.Start)

	m, err := back.Model()
	require.NoError(t, err)
	assert.Equal(t, tsp.CostModel(dm), m)

	_, err = problem.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDocument_JSON(t *testing.T) {
	src := `{"name":"j","matrix":[[null,1,"inf"],[1,"∞",2],[3,4,null]],"removed":[[1,2]]}`
	var doc problem.Document
	require.NoError(t, json.Unmarshal([]byte(src), &doc))
	require.NoError(t, doc.Validate())

	m, err := doc.Model()
	require.NoError(t, err)
	assert.True(t, math.IsInf(m.Cost(0, 2), 1))
	assert.True(t, math.IsInf(m.Cost(1, 2), 1), "removed edge")
	assert.Equal(t, 3.0, m.Cost(2, 0))

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"inf"`)

	var bad problem.Document
	err = json.Unmarshal([]byte(`{"matrix":[[true]]}`), &bad)
	require.ErrorIs(t, err, problem.ErrBadWeight)
}

func TestModel_MatrixGoesThroughDense(t *testing.T) {
	nan := problem.Weight(math.NaN())
	doc := problem.Document{Matrix: [][]problem.Weight{{problem.Weight(math.Inf(1)), nan}, {1, problem.Weight(math.Inf(1))}}}
	_, err := doc.Model()
	require.ErrorIs(t, err, matrix.ErrNaN, "NaN survives Validate but not the dense loader")

	doc = problem.Document{
		Matrix:  [][]problem.Weight{{0, 1, 2}, {3, 0, 4}, {5, 6, 0}},
		Removed: [][2]int{{0, 2}},
	}
	m, err := doc.Model()
	require.NoError(t, err)
	dm, ok := m.(tsp.DenseModel)
	require.True(t, ok, "matrix documents build a tsp.DenseModel")
	assert.True(t, math.IsInf(dm.Cost(0, 2), 1))
	assert.Equal(t, 4.0, dm.Cost(1, 2))
}
