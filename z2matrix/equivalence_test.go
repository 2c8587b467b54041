// Copyright (c) 2023 Colin McRae

package z2matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predrag3141/Z2Equivalence/z2number"
)

func newFromTriples(t *testing.T, triples [][3]int64, numRows, numCols int) *Z2Matrix {
	x, err := NewFromInt64Triples(triples, numRows, numCols)
	require.NoError(t, err)
	return x
}

func checkEquivalence(t *testing.T, a, b *Z2Matrix, expected bool) {
	actual, err := AreEquivalent(a, b)
	require.NoError(t, err)
	assert.Equalf(t, expected, actual, "a =\n%sb =\n%s", a.PrettyString(), b.PrettyString())
}

func TestAreEquivalent_Scenarios(t *testing.T) {
	identity, err := NewIdentity(3)
	require.NoError(t, err)

	// Identity against itself
	checkEquivalence(t, identity, identity, true)

	// One row's sign flipped is still a signed permutation
	flipped, err := identity.Set(1, 1, z2number.NewFromInt64(-1))
	require.NoError(t, err)
	checkEquivalence(t, identity, flipped, true)

	// An entry of 2 is outside {-1, 0, 1}
	doubled, err := identity.Set(2, 2, z2number.NewFromInt64(2))
	require.NoError(t, err)
	checkEquivalence(t, identity, doubled, false)

	// A sqrt(2) where the sole nonzero entry should be
	withRoot2 := newFromTriples(t, [][3]int64{
		{0, 1, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {1, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {1, 0, 0},
	}, 3, 3)
	checkEquivalence(t, withRoot2, withRoot2, false)
	checkEquivalence(t, withRoot2, identity, false)
	checkEquivalence(t, identity, withRoot2, false)

	// Zero matrix against the identity: no row of the product has a nonzero entry
	checkEquivalence(t, NewEmpty(3, 3), identity, false)
	checkEquivalence(t, identity, NewEmpty(3, 3), false)
}

func TestAreEquivalent_Rotations(t *testing.T) {
	r := rotation45(t)

	// r r^T = I
	checkEquivalence(t, r, r, true)

	// Rows of r swapped and negated
	permuted, err := r.PermuteRows([]int{1, 0}, []int{-1, 1})
	require.NoError(t, err)
	checkEquivalence(t, r, permuted, true)
	checkEquivalence(t, permuted, r, true)

	// r against I gives entries 1/sqrt(2), whose canonical c is 1
	identity, err := NewIdentity(2)
	require.NoError(t, err)
	checkEquivalence(t, r, identity, false)

	// Scaling a row of r by sqrt(2) gives an entry with a nonzero sqrt(2) coefficient
	scaled, err := NewFromRows([][]*z2number.Z2Number{
		{z2number.One(), z2number.NewFromInt64(-1)},
		{z2number.InverseRoot2(), z2number.InverseRoot2()},
	})
	require.NoError(t, err)
	checkEquivalence(t, r, scaled, false)
}

func TestAreEquivalent_RepeatedColumn(t *testing.T) {
	// Every row of the product has exactly one nonzero entry, but both are in
	// column 0, so the product is not a permutation
	a, err := NewFromInt64Array([]int64{1, 0, 1, 0}, 2, 2)
	require.NoError(t, err)
	identity, err := NewIdentity(2)
	require.NoError(t, err)
	checkEquivalence(t, a, identity, false)
	checkEquivalence(t, identity, a, false)
}

func TestAreEquivalent_Shapes(t *testing.T) {
	identity, err := NewIdentity(3)
	require.NoError(t, err)

	// Rows of different lengths
	twoByTwo, err := NewIdentity(2)
	require.NoError(t, err)
	_, err = AreEquivalent(identity, twoByTwo)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Different numbers of rows give a product that is not square
	twoByThree, err := NewFromInt64Array([]int64{1, 0, 0, 0, 1, 0}, 2, 3)
	require.NoError(t, err)
	equivalent, err := AreEquivalent(twoByThree, identity)
	require.NoError(t, err)
	assert.False(t, equivalent)

	// Malformed input
	_, err = AreEquivalent(identity, NewEmpty(0, 0))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = AreEquivalent(nil, identity)
	assert.Error(t, err)
}

func TestAreEquivalent_AgreesWithProduct(t *testing.T) {
	const (
		numTests = 2000
		maxDim   = 4
	)

	// Entries are drawn from a small set so that signed permutations turn up
	// often enough to exercise both outcomes.
	entries := [][3]int64{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}, {-1, 0, 0}, {1, 0, 1}, {-1, 0, 1}, {0, 1, 0}}
	r := rand.New(rand.NewSource(21))
	counts := make(map[bool]int)
	for testNbr := 0; testNbr < numTests; testNbr++ {
		numRows := 1 + r.Intn(maxDim)
		numCols := 1 + r.Intn(maxDim)
		aTriples := make([][3]int64, numRows*numCols)
		bTriples := make([][3]int64, numRows*numCols)
		for i := range aTriples {
			aTriples[i] = entries[r.Intn(len(entries))]
			bTriples[i] = entries[r.Intn(len(entries))]
		}
		a := newFromTriples(t, aTriples, numRows, numCols)
		b := newFromTriples(t, bTriples, numRows, numCols)
		product, err := MatrixMultiply(a, b.Transpose())
		require.NoError(t, err)
		expected := product.IsSignedPermutation()
		actual, err := AreEquivalent(a, b)
		require.NoError(t, err)
		require.Equalf(
			t, expected, actual, "a =\n%sb =\n%sab^T =\n%s", a.PrettyString(), b.PrettyString(),
			product.PrettyString(),
		)
		counts[actual]++
	}
	t.Logf("Counts of equivalent (true) and inequivalent (false) pairs: %v", counts)
	assert.Greater(t, counts[true], 0)
	assert.Greater(t, counts[false], 0)
}
