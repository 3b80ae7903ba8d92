package decl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramspace/decl"
	"github.com/katalvlaran/paramspace/paramset"
)

func TestScript_Apply(t *testing.T) {
	s, err := decl.CompileScript("function (x) { x.lr = Math.pow(10, x.lr); return x; }\n")
	require.NoError(t, err)

	in := paramset.Assignment{"lr": -2.0, "booster": "gbtree"}
	out, err := s.Apply(in, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, out["lr"], 1e-12)
	assert.Equal(t, "gbtree", out["booster"])
	// The input is not mutated.
	assert.Equal(t, -2.0, in["lr"])
}

func TestScript_NewObjectAndIDs(t *testing.T) {
	s, err := decl.CompileScript(`function (x, ids) { return {n: x.n + 1, count: ids.length}; };`)
	require.NoError(t, err)

	out, err := s.Apply(paramset.Assignment{"n": 2}, []string{"n", "m"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, out["n"])
	assert.EqualValues(t, 2, out["count"])
}

func TestScript_Errors(t *testing.T) {
	_, err := decl.CompileScript("function (x) {")
	assert.ErrorIs(t, err, decl.ErrScript)
	_, err = decl.CompileScript("42")
	assert.ErrorIs(t, err, decl.ErrScript)

	s, err := decl.CompileScript("function (x) { throw new Error('boom'); }")
	require.NoError(t, err)
	_, err = s.Apply(paramset.Assignment{}, nil)
	assert.ErrorIs(t, err, decl.ErrScript)

	s, err = decl.CompileScript("function (x) { return 1; }")
	require.NoError(t, err)
	_, err = s.Apply(paramset.Assignment{}, nil)
	assert.ErrorIs(t, err, decl.ErrScriptResult)
}

func TestScriptTrafo_OnParamSet(t *testing.T) {
	d, err := decl.ParseYAML([]byte(`
params:
  - id: lr
    type: real
    lower: -4
    upper: 0
trafo: |
  function (x) { x.lr = Math.pow(10, x.lr); return x; }
`))
	require.NoError(t, err)
	ps, err := decl.Build(d)
	require.NoError(t, err)
	require.True(t, ps.HasTrafo())

	out := ps.ApplyTrafo(paramset.Assignment{"lr": -1.0})
	assert.InDelta(t, 0.1, out["lr"], 1e-12)

	fn, err := decl.ScriptTrafo("function (x) { throw new Error('boom'); }")
	require.NoError(t, err)
	ps.SetTrafo(fn)
	assert.Panics(t, func() { ps.ApplyTrafo(paramset.Assignment{}) })

	_, err = decl.ScriptTrafo("not js at all (")
	assert.ErrorIs(t, err, decl.ErrScript)
}
