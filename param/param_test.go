package param_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramspace/param"
)

func mustInt(t *testing.T, id string, lo, hi float64, opts ...param.Option) *param.Parameter {
	t.Helper()
	p, err := param.NewInt(id, lo, hi, opts...)
	require.NoError(t, err)
	return p
}

// TestConstructors_Structural verifies eager rejection of malformed declarations.
func TestConstructors_Structural(t *testing.T) {
	_, err := param.NewInt("x", 5, 1)
	assert.ErrorIs(t, err, param.ErrInvalidBounds)

	_, err = param.NewInt("x", 0.5, 3)
	assert.ErrorIs(t, err, param.ErrInvalidBounds)

	_, err = param.NewReal("x", math.NaN(), 1)
	assert.ErrorIs(t, err, param.ErrInvalidBounds)

	_, err = param.NewInt("k", 0, 1e19)
	assert.ErrorIs(t, err, param.ErrInvalidBounds)
	_, err = param.NewInt("k", -param.MaxIntBound-2, 0)
	assert.ErrorIs(t, err, param.ErrInvalidBounds)

	_, err = param.NewCategorical("c", nil)
	assert.ErrorIs(t, err, param.ErrInvalidLevels)

	_, err = param.NewCategorical("c", []string{"a", "a"})
	assert.ErrorIs(t, err, param.ErrInvalidLevels)

	_, err = param.NewBool("")
	assert.ErrorIs(t, err, param.ErrEmptyID)

	_, err = param.NewInt("x", 0, 10, param.WithDefault(11))
	assert.ErrorIs(t, err, param.ErrInvalidDefault)

	p, err := param.NewInt("x", 0, 10, param.WithDefault(3))
	require.NoError(t, err)
	d, ok := p.Default()
	assert.True(t, ok)
	assert.Equal(t, 3, d)
}

func TestNewInt_WidestBounds(t *testing.T) {
	p, err := param.NewInt("k", -param.MaxIntBound, param.MaxIntBound)
	require.NoError(t, err)
	n, ok := p.Cardinality()
	require.True(t, ok)
	assert.Equal(t, 2*param.MaxIntBound+1, n)

	open, err := param.NewInt("k", 0, math.Inf(1))
	require.NoError(t, err)
	_, ok = open.Cardinality()
	assert.False(t, ok)
}

// TestCheckValue_Table covers the (a)-(e) order of evaluation.
func TestCheckValue_Table(t *testing.T) {
	even := func(v any) error {
		f, _ := param.AsFloat(v)
		if int(f)%2 != 0 {
			return errors.New("must be even")
		}
		return nil
	}
	pInt := mustInt(t, "i", 0, 10, param.WithSpecialValues("unset"), param.WithCustomCheck(even))
	pReal, _ := param.NewReal("r", -1, 1)
	pCat, _ := param.NewCategorical("c", []string{"x", "y", "z"})
	pBool, _ := param.NewBool("b")
	pAny, _ := param.NewOpaque("o", func(v any) error {
		if _, ok := v.([]int); !ok {
			return fmt.Errorf("want []int")
		}
		return nil
	})

	tests := []struct {
		name string
		p    *param.Parameter
		v    any
		want param.ViolationKind // 0 = ok
	}{
		{"int ok", pInt, 4, 0},
		{"int float integral ok", pInt, 4.0, 0},
		{"int special bypasses type", pInt, "unset", 0},
		{"int wrong type", pInt, "4", param.TypeViolation},
		{"int fractional", pInt, 4.5, param.TypeViolation},
		{"int out of bounds", pInt, 12, param.BoundsViolation},
		{"int custom fails", pInt, 3, param.CustomCheckFailure},
		{"real ok", pReal, 0.5, 0},
		{"real int accepted", pReal, 1, 0},
		{"real NaN", pReal, math.NaN(), param.TypeViolation},
		{"real bounds", pReal, 1.5, param.BoundsViolation},
		{"cat ok", pCat, "y", 0},
		{"cat level", pCat, "w", param.LevelViolation},
		{"cat type", pCat, 1, param.TypeViolation},
		{"bool ok", pBool, false, 0},
		{"bool type", pBool, "true", param.TypeViolation},
		{"bool nil", pBool, nil, param.TypeViolation},
		{"opaque ok", pAny, []int{1}, 0},
		{"opaque custom", pAny, "x", param.CustomCheckFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.p.CheckValue(tc.v)
			if tc.want == 0 {
				assert.Nil(t, v)
				assert.True(t, tc.p.Test(tc.v))
				assert.NoError(t, tc.p.Assert(tc.v))
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tc.want, v.Kind)
			assert.Equal(t, tc.p.ID(), v.ID)
			assert.False(t, tc.p.Test(tc.v))
			assert.Error(t, tc.p.Assert(tc.v))
		})
	}
}

// TestViolation_ErrorsIs ensures violations unwrap to their sentinel.
func TestViolation_ErrorsIs(t *testing.T) {
	p := mustInt(t, "i", 0, 1)
	err := p.Assert(7)
	assert.ErrorIs(t, err, param.ErrBoundsViolation)
	assert.NotErrorIs(t, err, param.ErrTypeViolation)

	var v *param.Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "i", v.ID)

	var nilV *param.Violation
	assert.NoError(t, nilV.Err())
}

// TestDerivedFacts covers boundedness, cardinality and domain enumeration.
func TestDerivedFacts(t *testing.T) {
	pInt := mustInt(t, "i", 1, 4)
	n, ok := pInt.Cardinality()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.True(t, pInt.IsBounded())
	assert.True(t, pInt.IsNumeric())

	pUnb := mustInt(t, "u", 0, math.Inf(1))
	assert.False(t, pUnb.IsBounded())
	_, ok = pUnb.Cardinality()
	assert.False(t, ok)

	pBool, _ := param.NewBool("b")
	assert.Equal(t, []any{true, false}, pBool.DomainValues())
	assert.True(t, pBool.IsCategorical())

	pAny, _ := param.NewOpaque("o", nil)
	assert.False(t, pAny.IsBounded())
	assert.True(t, pAny.Test(struct{}{}))
}

// TestWithID_CopyIsIndependent checks that renaming never touches the original.
func TestWithID_CopyIsIndependent(t *testing.T) {
	p := mustInt(t, "i", 0, 3, param.WithTags("base"))
	cp := p.WithID("i_rep_1", "i_rep", "base")
	assert.Equal(t, "i", p.ID())
	assert.Equal(t, []string{"base"}, p.Tags())
	assert.Equal(t, "i_rep_1", cp.ID())
	assert.Equal(t, []string{"base", "i_rep"}, cp.Tags())
	assert.True(t, cp.HasTag("i_rep"))
}

// TestConditions covers Equals/AnyOf evaluation and attach-time type checks.
func TestConditions(t *testing.T) {
	pBool, _ := param.NewBool("a")
	pCat, _ := param.NewCategorical("d", []string{"x", "y", "z"})

	eq := param.Equals(false)
	assert.Equal(t, param.CondEquals, eq.Kind())
	assert.True(t, eq.Test(false))
	assert.False(t, eq.Test(true))
	assert.NoError(t, param.ValidateCondition(eq, pBool))
	assert.ErrorIs(t, param.ValidateCondition(eq, pCat), param.ErrConditionType)

	in := param.AnyOf("x", "y")
	assert.Equal(t, "any_of", in.Kind().String())
	assert.True(t, in.Test("y"))
	assert.False(t, in.Test("z"))
	assert.NoError(t, param.ValidateCondition(in, pCat))
	assert.ErrorIs(t, param.ValidateCondition(param.AnyOf("x", "w"), pCat), param.ErrConditionType)
	assert.ErrorIs(t, param.ValidateCondition(nil, pCat), param.ErrConditionType)

	assert.PanicsWithError(t, param.ErrEmptyCondition.Error(), func() { param.AnyOf() })
	assert.Panics(t, func() { param.WithCustomCheck(nil) })
}

// TestValuesEqual_NumericNormalisation pins int/float equality.
func TestValuesEqual_NumericNormalisation(t *testing.T) {
	assert.True(t, param.ValuesEqual(1, 1.0))
	assert.True(t, param.ValuesEqual(int64(2), uint8(2)))
	assert.False(t, param.ValuesEqual(1, "1"))
	assert.False(t, param.ValuesEqual(true, 1))
	assert.True(t, param.ValuesEqual(nil, nil))
	assert.True(t, param.ValuesEqual([]int{1}, []int{1}))
}

// TestParseKind round-trips every kind name.
func TestParseKind(t *testing.T) {
	for _, k := range []param.Kind{param.Integer, param.Real, param.Categorical, param.Boolean, param.Opaque} {
		got, err := param.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := param.ParseKind("matrix")
	assert.Error(t, err)
}
