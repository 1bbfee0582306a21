package argtree

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaf_AssignValidValue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stepsize := Real("stepsize", "Step size for discrete evolution", 1, Positive[float64]())
	NewCategorical("hmc", "", stepsize)

	// --- Act ---
	err := stepsize.Assign("0.25")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 0.25, stepsize.Value())
	assert.False(t, stepsize.IsDefault())
}

func TestLeaf_InvalidValueLeavesCurrentValue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stepsize := Real("stepsize", "Step size for discrete evolution", 1, Positive[float64]())
	NewCategorical("hmc", "", stepsize)

	// --- Act ---
	err := stepsize.Assign("-1")

	// --- Assert ---
	require.Error(t, err)
	var argErr *Error
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, KindValidity, argErr.Kind)
	assert.Equal(t, "hmc.stepsize", argErr.Path)
	assert.Equal(t, "0 < stepsize", argErr.Expected)
	assert.Contains(t, err.Error(), "0 < stepsize")
	assert.Equal(t, 1.0, stepsize.Value(), "a rejected value must not be stored")
	assert.True(t, stepsize.IsDefault())
}

func TestLeaf_CoercionErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		leaf LeafArg
		raw  string
	}{
		{name: "real from word", leaf: Real("eta", "", 1, Positive[float64]()), raw: "fast"},
		{name: "int from fraction", leaf: Int("thin", "", 1, Positive[int]()), raw: "2.5"},
		{name: "int from whole real", leaf: Int("num_samples", "", 1000, NonNegative[int]()), raw: "1.0"},
		{name: "int from exponent", leaf: Int("num_samples", "", 1000, NonNegative[int]()), raw: "1e3"},
		{name: "uint from exponent", leaf: Uint("window", "", 25, Unbounded[uint]()), raw: "2e1"},
		{name: "int with two signs", leaf: Int("id", "", 0, Unbounded[int]()), raw: "+-4"},
		{name: "int from word", leaf: Int("thin", "", 1, Positive[int]()), raw: "two"},
		{name: "uint from negative", leaf: Uint("window", "", 25, Unbounded[uint]()), raw: "-3"},
		{name: "bool from word", leaf: Bool("engaged", "", true), raw: "maybe"},
		{name: "empty int", leaf: Int("thin", "", 1, Positive[int]()), raw: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.leaf.Format()

			err := tc.leaf.Assign(tc.raw)

			require.Error(t, err)
			var argErr *Error
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, KindCoercion, argErr.Kind)
			assert.Equal(t, tc.raw, argErr.Token)
			assert.NotNil(t, errors.Unwrap(err), "the underlying conversion error should be kept")
			assert.Equal(t, before, tc.leaf.Format())
		})
	}
}

func TestLeaf_BoolSpellings(t *testing.T) {
	t.Parallel()

	testCases := map[string]bool{"1": true, "0": false, "true": true, "false": false}
	for raw, want := range testCases {
		flag := Bool("save_warmup", "", !want)
		require.NoError(t, flag.Assign(raw), "raw %q", raw)
		assert.Equal(t, want, flag.Value(), "raw %q", raw)
	}
}

func TestLeaf_NumericForms(t *testing.T) {
	t.Parallel()

	tol := Real("tol_obj", "", 1e-12, Positive[float64]())
	require.NoError(t, tol.Assign("1e-8"))
	assert.Equal(t, 1e-8, tol.Value())

	depth := Int("max_depth", "", 10, Positive[int]())
	require.NoError(t, depth.Assign("12"))
	assert.Equal(t, 12, depth.Value())

	id := Int("id", "", 0, Unbounded[int]())
	require.NoError(t, id.Assign("-3"))
	assert.Equal(t, -3, id.Value())

	window := Uint("window", "", 25, Unbounded[uint]())
	require.NoError(t, window.Assign("4000000000"))
	assert.Equal(t, uint(4000000000), window.Value())
}

func TestLeaf_FormatRoundTrips(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{1e-12, 1e4, 1e7, 0.05, 2 * math.Pi, 0.8} {
		src := Real("x", "", v, Unbounded[float64]())
		dst := Real("x", "", 1, Unbounded[float64]())

		require.NoError(t, dst.Assign(src.Format()))
		assert.Equal(t, v, dst.Value(), "formatted as %q", src.Format())
	}
}

func TestLeaf_SetRespectsRule(t *testing.T) {
	t.Parallel()

	delta := Real("delta", "", 0.8, OpenUnit())
	require.Error(t, delta.Set(1))
	require.Error(t, delta.Set(0))
	require.NoError(t, delta.Set(0.95))
	assert.Equal(t, 0.95, delta.Value())

	jitter := Real("stepsize_jitter", "", 0, UnitInterval())
	require.NoError(t, jitter.Set(1))
	assert.Equal(t, "0 <= stepsize_jitter <= 1", jitter.Validity())

	seed := Uint("seed", "", 0, AtMost[uint](math.MaxUint32))
	assert.Equal(t, "seed <= 4294967295", seed.Validity())
	require.Error(t, seed.Set(math.MaxUint32+1))
}

func TestLeaf_DefaultMustSatisfyRule(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		Int("thin", "", 0, Positive[int]())
	})
}

func TestLeaf_IsFlag(t *testing.T) {
	t.Parallel()

	assert.True(t, Bool("engaged", "", true).IsFlag())
	assert.False(t, Int("iter", "", 1, Positive[int]()).IsFlag())
}
