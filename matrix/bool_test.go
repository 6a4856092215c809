package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/matrix"
)

func TestNewBool_BadShape(t *testing.T) {
	_, err := matrix.NewBool(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewBool(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestSetAtClear(t *testing.T) {
	m, err := matrix.NewBool(3, 130) // spans three words per row
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0))
	require.NoError(t, m.Set(1, 63))
	require.NoError(t, m.Set(1, 64))
	require.NoError(t, m.Set(2, 129))

	for _, tc := range []struct {
		i, j int
		want bool
	}{
		{1, 0, true}, {1, 63, true}, {1, 64, true}, {2, 129, true},
		{0, 0, false}, {1, 65, false}, {2, 128, false},
	} {
		got, errAt := m.At(tc.i, tc.j)
		require.NoError(t, errAt)
		assert.Equal(t, tc.want, got, "At(%d,%d)", tc.i, tc.j)
	}
	assert.Equal(t, 4, m.NNZ())

	require.NoError(t, m.Clear(1, 63))
	got, _ := m.At(1, 63)
	assert.False(t, got)
	assert.Equal(t, 3, m.NNZ())
}

func TestAtSet_OutOfRange(t *testing.T) {
	m, _ := matrix.NewBool(2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Clear(-1, 0), matrix.ErrOutOfRange)
}

func TestRowScan_OrderAndEarlyStop(t *testing.T) {
	m, _ := matrix.NewBool(1, 200)
	for _, j := range []int{5, 63, 64, 140, 199} {
		require.NoError(t, m.Set(0, j))
	}

	var seen []int
	require.NoError(t, m.RowScan(0, func(j int) bool {
		seen = append(seen, j)

		return true
	}))
	assert.Equal(t, []int{5, 63, 64, 140, 199}, seen)

	seen = seen[:0]
	require.NoError(t, m.RowScan(0, func(j int) bool {
		seen = append(seen, j)

		return j < 64 // stop after first bit of the second word
	}))
	assert.Equal(t, []int{5, 63, 64}, seen)
}

func TestCloneEqual(t *testing.T) {
	m, _ := matrix.NewBool(2, 70)
	require.NoError(t, m.Set(0, 69))
	c := m.Clone()
	assert.True(t, m.Equal(c))

	require.NoError(t, c.Set(1, 1))
	assert.False(t, m.Equal(c))

	other, _ := matrix.NewBool(2, 71)
	assert.False(t, m.Equal(other), "shape mismatch is never equal")
}
