package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dbgcycles/cycles"
)

// TestCountOnlyEnum_Binary3 matches the per-length cycle counts of dBG(3, 2).
func TestCountOnlyEnum_Binary3(t *testing.T) {
	want := []uint64{2, 1, 2, 3, 2, 3, 4, 2, 0}
	for i, w := range want {
		got, err := cycles.CountOnlyEnum(i+1, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, cycles.FromEnum(w), got, "length %d", i+1)
	}
}

// TestCountWithFormula_Provenance checks which regime answers each length.
func TestCountWithFormula_Provenance(t *testing.T) {
	cases := []struct {
		length int
		want   cycles.Count
	}{
		{1, cycles.Proved(2)},
		{2, cycles.Proved(1)},
		{3, cycles.Proved(2)},
		{4, cycles.Proved(3)},
		{5, cycles.Proved(2)},
		{6, cycles.Conjectured(3)},
		{7, cycles.FromEnum(4)},
		{8, cycles.Proved(2)},
		{9, cycles.FromEnum(0)},
	}
	for _, tc := range cases {
		got, err := cycles.CountWithFormula(tc.length, 3, 2, false)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "length %d", tc.length)
	}
}

// TestCountWithFormula_OnlyFormula returns the sentinel outside formula regimes.
func TestCountWithFormula_OnlyFormula(t *testing.T) {
	got, err := cycles.CountWithFormula(9, 3, 2, true)
	require.NoError(t, err)
	assert.Equal(t, cycles.None(), got)
	_, ok := got.Value()
	assert.False(t, ok)

	got, err = cycles.CountWithFormula(7, 3, 2, true)
	require.NoError(t, err)
	assert.Equal(t, cycles.NoFormula, got.Provenance())

	got, err = cycles.CountWithFormula(8, 3, 2, true)
	require.NoError(t, err)
	v, ok := got.Value()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), v)
}

// TestCountWithFormula_AgreesWithEnumeration compares every formula regime
// against enumeration on small graphs.
func TestCountWithFormula_AgreesWithEnumeration(t *testing.T) {
	params := []struct {
		order int
		sigma uint8
		maxL  int
	}{
		{1, 2, 4}, {1, 3, 3}, {1, 4, 4}, {2, 2, 4}, {3, 2, 8}, {4, 2, 16}, {2, 3, 9}, {3, 3, 7}, {2, 4, 6},
	}
	for _, p := range params {
		for l := 1; l <= p.maxL; l++ {
			byFormula, err := cycles.CountWithFormula(l, p.order, p.sigma, true)
			require.NoError(t, err)
			v, ok := byFormula.Value()
			if !ok {
				continue
			}
			byEnum, err := cycles.CountOnlyEnum(l, p.order, p.sigma)
			require.NoError(t, err)
			e, _ := byEnum.Value()
			assert.Equal(t, e, v, "l=%d k=%d σ=%d (%s)", l, p.order, p.sigma, byFormula.Provenance())
		}
	}
}

// TestCountWithFormula_OrderOne checks that length order+3 at order 1 does
// not use the conjectured correction.
func TestCountWithFormula_OrderOne(t *testing.T) {
	cases := []struct {
		sigma       uint8
		onlyFormula bool
		want        cycles.Count
	}{
		{4, false, cycles.Proved(6)}, // 4 == 4^1: de Bruijn sequences
		{4, true, cycles.Proved(6)},
		{2, false, cycles.FromEnum(0)},
		{2, true, cycles.None()},
	}
	for _, tc := range cases {
		got, err := cycles.CountWithFormula(4, 1, tc.sigma, tc.onlyFormula)
		require.NoError(t, err, "σ=%d", tc.sigma)
		assert.Equal(t, tc.want, got, "σ=%d onlyFormula=%v", tc.sigma, tc.onlyFormula)
	}

	// Length order+2 at order 1 stays on the proved correction.
	got, err := cycles.CountWithFormula(3, 1, 4, false)
	require.NoError(t, err)
	assert.Equal(t, cycles.Proved(8), got)
}

// TestCountWithFormula_TernaryValues pins a few ternary counts.
func TestCountWithFormula_TernaryValues(t *testing.T) {
	cases := []struct {
		length int
		want   cycles.Count
	}{
		{4, cycles.Proved(12)},
		{5, cycles.Conjectured(18)},
		{6, cycles.FromEnum(20)},
		{9, cycles.Proved(24)},
	}
	for _, tc := range cases {
		got, err := cycles.CountWithFormula(tc.length, 2, 3, false)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "length %d", tc.length)
	}
}

// TestCount_InvalidParameters covers rejected input for both drivers.
func TestCount_InvalidParameters(t *testing.T) {
	got, err := cycles.CountOnlyEnum(3, 0, 2)
	assert.ErrorIs(t, err, cycles.ErrInvalidParameter)
	assert.Equal(t, cycles.None(), got)

	_, err = cycles.CountWithFormula(0, 3, 2, true)
	assert.ErrorIs(t, err, cycles.ErrInvalidParameter)

	_, err = cycles.CountWithFormula(3, 3, 1, false)
	assert.ErrorIs(t, err, cycles.ErrInvalidParameter)
}

// TestCount_String renders provenance labels.
func TestCount_String(t *testing.T) {
	assert.Equal(t, "2 (proved)", cycles.Proved(2).String())
	assert.Equal(t, "3 (conjectured)", cycles.Conjectured(3).String())
	assert.Equal(t, "4 (computed)", cycles.FromEnum(4).String())
	assert.Equal(t, "no formula", cycles.None().String())
	assert.Equal(t, "no formula", cycles.NoFormula.String())
}
