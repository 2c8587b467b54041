// Copyright (c) 2023 Colin McRae

package z2matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predrag3141/Z2Equivalence/z2number"
)

// rotation45 returns the matrix of a 45 degree rotation,
//
//	 _                        _
//	|  1/sqrt(2)  -1/sqrt(2)   |
//	|_ 1/sqrt(2)   1/sqrt(2)  _|
func rotation45(t *testing.T) *Z2Matrix {
	r, err := NewFromInt64Triples(
		[][3]int64{{1, 0, 1}, {-1, 0, 1}, {1, 0, 1}, {1, 0, 1}}, 2, 2,
	)
	require.NoError(t, err)
	return r
}

func TestNewFromRows(t *testing.T) {
	one, zero := z2number.One(), z2number.Zero()
	x, err := NewFromRows([][]*z2number.Z2Number{{one, zero, zero}, {zero, one, zero}})
	require.NoError(t, err)
	numRows, numCols := x.Dimensions()
	assert.Equal(t, 2, numRows)
	assert.Equal(t, 3, numCols)

	// The input slices are not shared
	rows := [][]*z2number.Z2Number{{one, zero}, {zero, one}}
	x, err = NewFromRows(rows)
	require.NoError(t, err)
	rows[0][0] = zero
	entry, err := x.Get(0, 0)
	require.NoError(t, err)
	assert.True(t, entry.Equals(one))

	// Ragged, empty and nil input
	_, err = NewFromRows([][]*z2number.Z2Number{{one, zero}, {zero}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = NewFromRows([][]*z2number.Z2Number{})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = NewFromRows([][]*z2number.Z2Number{{}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = NewFromRows([][]*z2number.Z2Number{{one, nil}})
	assert.Error(t, err)
}

func TestNewFromInt64Triples(t *testing.T) {
	x, err := NewFromInt64Triples([][3]int64{{2, 0, 2}, {0, 1, 0}}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, 0] [0, 1, 0]\n", x.String())
	assert.Equal(t, "1 1√2\n", x.PrettyString())

	x, err = NewFromInt64Triples([][3]int64{{1, 0, 0}}, 1, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, x)

	x, err = NewFromInt64Triples([][3]int64{}, 0, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, x)

	x, err = NewFromInt64Triples([][3]int64{{1, 0, -1}}, 1, 1)
	assert.ErrorIs(t, err, z2number.ErrNegativeExponent)
	assert.Nil(t, x)
}

func TestNewIdentity(t *testing.T) {
	identity, err := NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, identity.NumRows())
	assert.Equal(t, 3, identity.NumCols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			entry, err := identity.Get(i, j)
			require.NoError(t, err)
			if i == j {
				assert.True(t, entry.EqualsInt64(1))
			} else {
				assert.True(t, entry.IsZero())
			}
		}
	}
	assert.True(t, identity.IsSignedPermutation())

	// Dimension 0 or less
	_, err = NewIdentity(0)
	assert.Error(t, err)
}

func TestNewEmpty(t *testing.T) {
	x := NewEmpty(4, 5)
	numRows, numCols := x.Dimensions()
	assert.Equal(t, 4, numRows)
	assert.Equal(t, 5, numCols)

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		x = NewEmpty(dims[0], dims[1])
		numRows, numCols = x.Dimensions()
		assert.Equal(t, 0, numRows)
		assert.Equal(t, 0, numCols)
	}
}

func TestDotProduct(t *testing.T) {
	root2, inverseRoot2 := z2number.Root2(), z2number.InverseRoot2()
	x := []*z2number.Z2Number{root2, inverseRoot2, z2number.NewFromInt64(3)}
	y := []*z2number.Z2Number{inverseRoot2, inverseRoot2, z2number.NewFromInt64(-2)}

	// 1 + 1/2 - 6 = -9/2 = -9 / sqrt(2)^2
	actual, err := DotProduct(x, y)
	require.NoError(t, err)
	assert.Equal(t, "[-9, 0, 2]", actual.String())

	actual, err = DotProduct(nil, []*z2number.Z2Number{})
	require.NoError(t, err)
	assert.True(t, actual.IsZero())

	// Every mismatched length is an error
	for xLen := 0; xLen < 4; xLen++ {
		for yLen := 0; yLen < 4; yLen++ {
			if xLen == yLen {
				continue
			}
			actual, err = DotProduct(x[:xLen], y[:yLen])
			assert.ErrorIs(t, err, ErrShapeMismatch)
			assert.Nil(t, actual)
		}
	}
}

func TestMatrixMultiply(t *testing.T) {
	x, err := NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	y, err := NewFromInt64Array([]int64{7, 8, 9, 10, 11, 12}, 3, 2)
	require.NoError(t, err)
	expected, err := NewFromInt64Array([]int64{58, 64, 139, 154}, 2, 2)
	require.NoError(t, err)
	actual, err := MatrixMultiply(x, y)
	require.NoError(t, err)
	assert.True(t, expected.Equals(actual))

	// Receiver form, with either operand as the receiver
	actual, err = NewEmpty(0, 0).Mul(x, y)
	require.NoError(t, err)
	assert.True(t, expected.Equals(actual))
	_, err = x.Mul(x, y)
	require.NoError(t, err)
	assert.True(t, expected.Equals(x))

	// A rotation times its transpose is the identity
	r := rotation45(t)
	identity, err := NewIdentity(2)
	require.NoError(t, err)
	actual, err = MatrixMultiply(r, r.Transpose())
	require.NoError(t, err)
	assert.True(t, identity.Equals(actual))

	// Two 45 degree rotations make a 90 degree rotation
	actual, err = MatrixMultiply(r, r)
	require.NoError(t, err)
	expected, err = NewFromInt64Array([]int64{0, -1, 1, 0}, 2, 2)
	require.NoError(t, err)
	assert.True(t, expected.Equals(actual))
	assert.True(t, actual.IsSignedPermutation())

	// Mismatched dimensions
	oneByTwo, err := NewFromInt64Array([]int64{1, 2}, 1, 2)
	require.NoError(t, err)
	out, err := MatrixMultiply(oneByTwo, oneByTwo)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, out)
	receiver := NewEmpty(1, 1)
	out, err = receiver.Mul(oneByTwo, oneByTwo)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, out)
	assert.Equal(t, 1, receiver.NumRows())

	// Malformed and empty operands
	wrongLen, err := NewFromInt64Array([]int64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	wrongLen.numRows = 1
	_, err = MatrixMultiply(wrongLen, oneByTwo)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = MatrixMultiply(oneByTwo, NewEmpty(0, 0))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = MatrixMultiply(nil, oneByTwo)
	assert.Error(t, err)
}

func TestTranspose(t *testing.T) {
	//  1 3 5
	//  7 9 2       1 7 4 10 7
	//  4 6 8   ->  3 9 6  8 5
	// 10 8 7       5 2 8  7 3
	//  7 5 3
	x, err := NewFromInt64Array([]int64{1, 3, 5, 7, 9, 2, 4, 6, 8, 10, 8, 7, 7, 5, 3}, 5, 3)
	require.NoError(t, err)
	expected, err := NewFromInt64Array([]int64{1, 7, 4, 10, 7, 3, 9, 6, 8, 5, 5, 2, 8, 7, 3}, 3, 5)
	require.NoError(t, err)
	assert.True(t, expected.Equals(x.Transpose()))
	assert.True(t, x.Equals(x.Transpose().Transpose()))
	assert.False(t, x.Equals(expected))
}

func TestGetSetRowColumn(t *testing.T) {
	x := NewEmpty(3, 5)
	var err error
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			// 0, 3, 6, 9, 12, 15, ..., 42
			x, err = x.Set(i, j, z2number.NewFromInt64(int64(15*i+3*j)))
			require.NoError(t, err)
		}
	}
	expected, err := NewFromInt64Array(
		[]int64{0, 3, 6, 9, 12, 15, 18, 21, 24, 27, 30, 33, 36, 39, 42}, 3, 5,
	)
	require.NoError(t, err)
	assert.True(t, expected.Equals(x))

	// Set does not modify its receiver
	y, err := x.Set(0, 0, z2number.Root2())
	require.NoError(t, err)
	entry, err := x.Get(0, 0)
	require.NoError(t, err)
	assert.True(t, entry.IsZero())
	entry, err = y.Get(0, 0)
	require.NoError(t, err)
	assert.True(t, entry.Equals(z2number.Root2()))

	row, err := x.Row(1)
	require.NoError(t, err)
	require.Equal(t, 5, len(row))
	assert.True(t, row[4].EqualsInt64(27))
	row[4] = z2number.Zero()
	entry, err = x.Get(1, 4)
	require.NoError(t, err)
	assert.True(t, entry.EqualsInt64(27))

	column, err := x.Column(2)
	require.NoError(t, err)
	require.Equal(t, 3, len(column))
	assert.True(t, column[2].EqualsInt64(36))

	// Indices out of range
	for _, ij := range [][2]int{{3, 0}, {-1, 0}, {0, 5}, {0, -1}} {
		_, err = x.Get(ij[0], ij[1])
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = x.Set(ij[0], ij[1], z2number.One())
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	_, err = x.Row(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = x.Column(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = x.Set(0, 0, nil)
	assert.Error(t, err)
}

func TestPermuteRows(t *testing.T) {
	x, err := NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	// Row 0 -> row 2, row 1 -> row 0 (negated), row 2 -> row 1
	actual, err := x.PermuteRows([]int{2, 0, 1}, []int{1, -1, 1})
	require.NoError(t, err)
	expected, err := NewFromInt64Array([]int64{-3, -4, 5, 6, 1, 2}, 3, 2)
	require.NoError(t, err)
	assert.True(t, expected.Equals(actual))

	actual, err = x.PermuteRows([]int{0, 1, 2}, nil)
	require.NoError(t, err)
	assert.True(t, x.Equals(actual))

	_, err = x.PermuteRows([]int{0, 1}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = x.PermuteRows([]int{0, 1, 2}, []int{1, 1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = x.PermuteRows([]int{0, 1, 3}, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = x.PermuteRows([]int{0, 1, 1}, nil)
	assert.Error(t, err)
	_, err = x.PermuteRows([]int{0, 1, 2}, []int{1, 2, 1})
	assert.Error(t, err)
}

func TestIsSignedPermutation(t *testing.T) {
	for _, tc := range []struct {
		entries  []int64
		numRows  int
		numCols  int
		expected bool
	}{
		{[]int64{0, -1, 1, 0}, 2, 2, true},
		{[]int64{0, 0, -1, 1, 0, 0, 0, 1, 0}, 3, 3, true},
		{[]int64{1, 0, 1, 0}, 2, 2, false},
		{[]int64{1, 1, 0, 1}, 2, 2, false},
		{[]int64{2, 0, 0, 1}, 2, 2, false},
		{[]int64{0, 0, 0, 1}, 2, 2, false},
		{[]int64{1, 0}, 1, 2, false},
	} {
		x, err := NewFromInt64Array(tc.entries, tc.numRows, tc.numCols)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, x.IsSignedPermutation(), "%v", tc.entries)
	}
	x, err := NewFromInt64Triples([][3]int64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}, {1, 0, 0}}, 2, 2)
	require.NoError(t, err)
	assert.False(t, x.IsSignedPermutation())
	assert.False(t, NewEmpty(0, 0).IsSignedPermutation())
}
