package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const spaceYAML = `
params:
  - id: booster
    type: categorical
    levels: [gbtree, gblinear]
  - id: max_depth
    type: int
    lower: 1
    upper: 3
  - id: lr
    type: real
    lower: -3
    upper: -1
depends:
  - param: max_depth
    on: booster
    equals: gbtree
trafo: |
  function (x) { x.lr = Math.pow(10, x.lr); return x; }
`

func writeDecl(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "space.yaml")
	require.NoError(t, os.WriteFile(path, []byte(spaceYAML), 0o600))
	return path
}

func runJSON(t *testing.T, args ...string) []map[string]any {
	t.Helper()
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, args), errOut.String())
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows), out.String())
	return rows
}

func TestRun_Grid(t *testing.T) {
	path := writeDecl(t)

	rows := runJSON(t, "-mode", "grid", "-resolution", "3", path)
	assert.Len(t, rows, 2*3*3)

	// Strict mode drops the gblinear rows that carry max_depth.
	rows = runJSON(t, "-mode", "grid", "-resolution", "3", "-strict", path)
	assert.Len(t, rows, 3*3)
	for _, r := range rows {
		assert.Equal(t, "gbtree", r["booster"])
	}
}

func TestRun_RandomSeeded(t *testing.T) {
	path := writeDecl(t)

	a := runJSON(t, "-n", "25", "-seed", "3", path)
	b := runJSON(t, "-n", "25", "-seed", "3", path)
	require.Len(t, a, 25)
	assert.Equal(t, a, b)
	for _, r := range a {
		if r["booster"] == "gblinear" {
			assert.NotContains(t, r, "max_depth")
		}
	}
}

func TestRun_Trafo(t *testing.T) {
	path := writeDecl(t)
	for _, r := range runJSON(t, "-n", "10", "-seed", "1", "-trafo", path) {
		lr := r["lr"].(float64)
		assert.GreaterOrEqual(t, lr, 0.001-1e-12)
		assert.LessOrEqual(t, lr, 0.1+1e-12)
	}
}

func TestRun_YAMLFromEnv(t *testing.T) {
	t.Setenv("PARAMGEN_FORMAT", "yaml")
	t.Setenv("PARAMGEN_N", "4")
	path := writeDecl(t)

	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"-seed", "9", path}))
	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rows))
	assert.Len(t, rows, 4)
}

func TestRun_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "paramgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mode: random\nn: 7\nseed: 2\n"), 0o600))
	path := writeDecl(t)

	assert.Len(t, runJSON(t, "-config", cfgPath, path), 7)
	assert.Len(t, runJSON(t, "-config", cfgPath, "-n", "2", path), 2)
}

func TestRun_Errors(t *testing.T) {
	path := writeDecl(t)
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{"-mode", "lattice", path})
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)

	err = run(&out, &errOut, []string{"-bogus", path})
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)

	err = run(&out, &errOut, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.NoError(t, run(&out, &errOut, []string{"-h"}))
	assert.NoError(t, run(&out, &errOut, nil))
	assert.Contains(t, errOut.String(), "Usage:")
}
