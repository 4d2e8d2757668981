package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/problem"
	"github.com/katalvlaran/tspbb/tsp"
)

const sampleProblem = `name: sample
matrix:
  - [inf, 10, 15, 20]
  - [5, inf, 9, 10]
  - [6, 13, inf, 12]
  - [8, 8, 9, inf]
`

// execute runs the CLI with args and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func writeProblem(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_JSON(t *testing.T) {
	path := writeProblem(t, sampleProblem)
	out, logs, err := execute(t, "solve", path, "--json", "--time", "5s")
	require.NoError(t, err)
	assert.Contains(t, logs, "Solved 4 cities")

	var got struct {
		RunID  string  `json:"run_id"`
		Name   string  `json:"name"`
		Cities int     `json:"cities"`
		Tour   []int   `json:"tour"`
		Cost   float64 `json:"cost"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "sample", got.Name)
	assert.Equal(t, 4, got.Cities)
	assert.Equal(t, []int{0, 1, 3, 2}, got.Tour)
	assert.Equal(t, 35.0, got.Cost)
	assert.NotEmpty(t, got.RunID)
}

func TestSolve_Pretty(t *testing.T) {
	out, _, err := execute(t, "solve", "--size", "7", "--mode", "normal", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "normal-7-seed3")
	assert.Contains(t, out, "Tour is optimal")
}

func TestSolve_Verbose(t *testing.T) {
	path := writeProblem(t, sampleProblem)
	_, logs, err := execute(t, "solve", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "best tour")
	assert.Contains(t, logs, "search finished")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	require.ErrorIs(t, err, errNoInstance)

	_, _, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeProblem(t, "matrix:\n  - [inf, 1, 1]\n  - [1, inf, 1]\n  - [inf, inf, inf]\n")
	_, _, err = execute(t, "solve", path)
	require.ErrorIs(t, err, tsp.ErrInfeasible)

	_, _, err = execute(t, "solve", "--size", "5", "--mode", "brutal")
	require.Error(t, err)
}

func TestSolve_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "tspbb.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[solver]\nstart_city = 2\n"), 0o600))
	path := writeProblem(t, sampleProblem)

	out, _, err := execute(t, "solve", path, "--json", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"tour": [`)
	var got struct{ Tour []int }
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Tour[0])

	out, _, err = execute(t, "solve", path, "--json", "--config", cfgPath, "--start", "1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Tour[0])
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "generate", "--size", "6", "--mode", "hard", "--seed", "4")
	require.NoError(t, err)
	doc, err := problem.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 6, doc.Size())
	assert.Equal(t, "hard", doc.Mode)
	assert.Equal(t, int64(4), doc.Seed)

	path := filepath.Join(t.TempDir(), "gen.yaml")
	out, _, err = execute(t, "generate", "--size", "5", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = problem.Load(path)
	require.NoError(t, err)
}

func TestVerify(t *testing.T) {
	path := writeProblem(t, sampleProblem)
	out, _, err := execute(t, "verify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Costs match")

	out, _, err = execute(t, "verify", "--size", "9", "--mode", "hard", "--seed", "2")
	if err == nil {
		assert.Contains(t, out, "Costs match")
	} else {
		require.ErrorIs(t, err, tsp.ErrInfeasible)
	}
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "bench", "--size", "6", "--runs", "3", "--time", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, "3/3")
	assert.Contains(t, out, "vs random")

	_, _, err = execute(t, "bench", "--runs", "0")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	defer SetVersion("dev", "none", "unknown")

	var out bytes.Buffer
	root := New(&out, io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "tspbb v1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestServe_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	root := New(&out, io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})
	require.NoError(t, root.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "serving on 127.0.0.1:0")
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.NotNil(t, loggerFromContext(context.Background()))

	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	newProgress(l).done("finished")
	assert.Contains(t, buf.String(), "finished")
}
