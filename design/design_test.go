package design_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

func mustSet(t *testing.T, ps ...*param.Parameter) *paramset.ParamSet {
	t.Helper()
	s, err := paramset.New(ps...)
	require.NoError(t, err)
	return s
}

func gatedSet(t *testing.T) *paramset.ParamSet {
	t.Helper()
	a, err := param.NewBool("A")
	require.NoError(t, err)
	b, err := param.NewReal("B", 0, 1)
	require.NoError(t, err)
	ps := mustSet(t, a, b)
	require.NoError(t, ps.AddDependency("B", "A", param.Equals(true)))
	return ps
}

func TestNew_Validation(t *testing.T) {
	ps := gatedSet(t)

	_, err := design.New(nil, nil)
	assert.ErrorIs(t, err, design.ErrNilParamSet)

	_, err = design.New(ps, [][]any{{true, 0.5}, {false}})
	assert.ErrorIs(t, err, design.ErrRowWidth)

	d, err := design.New(ps, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.NotEqual(t, uuid.Nil, d.ID())
	assert.Equal(t, []string{"A", "B"}, d.Columns())
}

func TestNew_SnapshotsParamSet(t *testing.T) {
	ps := gatedSet(t)
	rows := [][]any{{true, 0.5}}
	d, err := design.New(ps, rows)
	require.NoError(t, err)

	// Neither the caller's set nor the caller's rows reach the design.
	require.NoError(t, ps.Subset("A"))
	rows[0][1] = 99.0
	assert.Equal(t, []string{"A", "B"}, d.ParamSet().IDs())
	assert.Equal(t, []any{true, 0.5}, d.Row(0))

	// Copies handed out are independent too.
	got := d.Rows()
	got[0][0] = false
	assert.Equal(t, true, d.Row(0)[0])
}

func TestTranspose_DropsNotSampled(t *testing.T) {
	ps := gatedSet(t)
	d, err := design.New(ps, [][]any{
		{true, 0.25},
		{false, design.NotSampled},
	})
	require.NoError(t, err)

	got := d.Transpose(false)
	require.Len(t, got, 2)
	assert.Equal(t, paramset.Assignment{"A": true, "B": 0.25}, got[0])
	assert.Equal(t, paramset.Assignment{"A": false}, got[1])
	assert.False(t, got[1].Has("B"))
	assert.NoError(t, d.Validate())
}

func TestTranspose_Trafo(t *testing.T) {
	ps := gatedSet(t)
	ps.SetTrafo(func(a paramset.Assignment, _ *paramset.ParamSet) paramset.Assignment {
		if b, ok := a["B"].(float64); ok {
			a["B"] = b * 100
		}
		return a
	})
	d, err := design.New(ps, [][]any{{true, 0.5}})
	require.NoError(t, err)

	assert.Equal(t, 50.0, d.Transpose(true)[0]["B"])
	assert.Equal(t, 0.5, d.Transpose(false)[0]["B"])
	// Raw rows stay untransformed.
	assert.Equal(t, 0.5, d.Row(0)[1])
}

func TestColumn(t *testing.T) {
	d, err := design.New(gatedSet(t), [][]any{{true, 0.1}, {false, design.NotSampled}})
	require.NoError(t, err)

	col, ok := d.Column("A")
	require.True(t, ok)
	assert.Equal(t, []any{true, false}, col)
	_, ok = d.Column("nope")
	assert.False(t, ok)
	assert.True(t, design.IsNotSampled(d.Row(1)[1]))
	assert.False(t, design.IsNotSampled(nil))
}

func TestValidate_ReportsRow(t *testing.T) {
	d, err := design.New(gatedSet(t), [][]any{{true, 0.1}, {false, 0.2}})
	require.NoError(t, err)

	err = d.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrDependencyUnmet)
	assert.Contains(t, err.Error(), "row 1")

	v := d.Violations()
	assert.Nil(t, v[0])
	require.NotNil(t, v[1])
	assert.Equal(t, "B", v[1].ID)
}
