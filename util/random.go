// Copyright (c) 2023 Colin McRae

package util

import (
	"fmt"
	"math/rand"

	"github.com/predrag3141/Z2Equivalence/z2matrix"
	"github.com/predrag3141/Z2Equivalence/z2number"
)

// RandomZ2Number returns the canonical form of (a + b sqrt(2)) / sqrt(2)^c with
// a, b and c drawn from r, each in {0,...,maxEntry-1}. maxEntry must be positive.
func RandomZ2Number(r *rand.Rand, maxEntry int64) (*z2number.Z2Number, error) {
	if maxEntry < 1 {
		return nil, fmt.Errorf("RandomZ2Number: maxEntry = %d < 1", maxEntry)
	}
	return z2number.New(r.Int63n(maxEntry), r.Int63n(maxEntry), r.Int63n(maxEntry))
}

// RandomZ2Matrix returns a numRows x numCols matrix with entries from RandomZ2Number
func RandomZ2Matrix(r *rand.Rand, numRows, numCols int, maxEntry int64) (*z2matrix.Z2Matrix, error) {
	if numRows < 1 || numCols < 1 {
		return nil, fmt.Errorf("RandomZ2Matrix: illegal dimensions %d x %d", numRows, numCols)
	}
	rows := make([][]*z2number.Z2Number, numRows)
	for i := range rows {
		rows[i] = make([]*z2number.Z2Number, numCols)
		for j := range rows[i] {
			var err error
			rows[i][j], err = RandomZ2Number(r, maxEntry)
			if err != nil {
				return nil, err
			}
		}
	}
	return z2matrix.NewFromRows(rows)
}

// RandomSignedPermutation returns a permutation of {0,...,dim-1} that is not the
// identity when dim > 1, along with dim signs, each 1 or -1.
func RandomSignedPermutation(r *rand.Rand, dim int) ([]int, []int) {
	return GetPermutation(r, dim), GetSigns(r, dim)
}

// RandomSignedPermutationMatrix returns a dim x dim signed permutation matrix
func RandomSignedPermutationMatrix(r *rand.Rand, dim int) (*z2matrix.Z2Matrix, error) {
	perm, signs := RandomSignedPermutation(r, dim)
	entries, err := SignedPermutationArray(perm, signs)
	if err != nil {
		return nil, fmt.Errorf("RandomSignedPermutationMatrix: %w", err)
	}
	return z2matrix.NewFromInt64Array(entries, dim, dim)
}

// Rotation45 returns the dim x dim matrix that rotates the plane spanned by
// coordinates i and j through 45 degrees, clockwise if sign is -1 and counter-
// clockwise otherwise. Its entries in rows and columns i and j are +/- 1/sqrt(2).
func Rotation45(dim, i, j, sign int) (*z2matrix.Z2Matrix, error) {
	if i == j {
		return nil, fmt.Errorf("Rotation45: i = j = %d", i)
	}
	retVal, err := z2matrix.NewIdentity(dim)
	if err != nil {
		return nil, fmt.Errorf("Rotation45: %w", err)
	}
	inverseRoot2 := z2number.InverseRoot2()
	offDiagonal := inverseRoot2
	if sign == -1 {
		offDiagonal = inverseRoot2.Neg()
	}
	for _, entry := range []struct {
		row, col int
		value    *z2number.Z2Number
	}{
		{i, i, inverseRoot2},
		{i, j, offDiagonal.Neg()},
		{j, i, offDiagonal},
		{j, j, inverseRoot2},
	} {
		retVal, err = retVal.Set(entry.row, entry.col, entry.value)
		if err != nil {
			return nil, fmt.Errorf("Rotation45: %w", err)
		}
	}
	return retVal, nil
}

// RandomOrthogonal returns the product of numRotations random 45-degree plane
// rotations of dimension dim. The result is orthogonal with entries in
// Z[1/sqrt(2)]. dim must be at least 2 unless numRotations is 0.
func RandomOrthogonal(r *rand.Rand, dim, numRotations int) (*z2matrix.Z2Matrix, error) {
	if numRotations > 0 && dim < 2 {
		return nil, fmt.Errorf("RandomOrthogonal: cannot rotate in dimension %d", dim)
	}
	retVal, err := z2matrix.NewIdentity(dim)
	if err != nil {
		return nil, fmt.Errorf("RandomOrthogonal: %w", err)
	}
	for k := 0; k < numRotations; k++ {
		i := r.Intn(dim)
		j := r.Intn(dim - 1)
		if i <= j {
			j++
		}
		var rotation *z2matrix.Z2Matrix
		rotation, err = Rotation45(dim, i, j, 2*r.Intn(2)-1)
		if err != nil {
			return nil, fmt.Errorf("RandomOrthogonal: could not create rotation %d: %w", k, err)
		}
		retVal, err = z2matrix.MatrixMultiply(rotation, retVal)
		if err != nil {
			return nil, fmt.Errorf("RandomOrthogonal: could not apply rotation %d: %w", k, err)
		}
	}
	return retVal, nil
}

// RandomEquivalentPair returns an orthogonal matrix a from RandomOrthogonal and
// b = pa for a random signed permutation matrix p. Since a times the transpose
// of b is the transpose of p, a and b are equivalent.
func RandomEquivalentPair(r *rand.Rand, dim, numRotations int) (*z2matrix.Z2Matrix, *z2matrix.Z2Matrix, error) {
	a, err := RandomOrthogonal(r, dim, numRotations)
	if err != nil {
		return nil, nil, fmt.Errorf("RandomEquivalentPair: %w", err)
	}
	perm, signs := RandomSignedPermutation(r, dim)
	var b *z2matrix.Z2Matrix
	b, err = a.PermuteRows(perm, signs)
	if err != nil {
		return nil, nil, fmt.Errorf("RandomEquivalentPair: %w", err)
	}
	return a, b, nil
}

// RandomInequivalentPair is like RandomEquivalentPair, except that one row of b
// is multiplied by sqrt(2). One entry of a times the transpose of b is then
// +/- sqrt(2), so a and b are never equivalent.
func RandomInequivalentPair(r *rand.Rand, dim, numRotations int) (*z2matrix.Z2Matrix, *z2matrix.Z2Matrix, error) {
	a, b, err := RandomEquivalentPair(r, dim, numRotations)
	if err != nil {
		return nil, nil, fmt.Errorf("RandomInequivalentPair: %w", err)
	}
	row := r.Intn(dim)
	for j := 0; j < dim; j++ {
		var entry *z2number.Z2Number
		entry, err = b.Get(row, j)
		if err != nil {
			return nil, nil, fmt.Errorf("RandomInequivalentPair: %w", err)
		}
		b, err = b.Set(row, j, entry.MulRoot2())
		if err != nil {
			return nil, nil, fmt.Errorf("RandomInequivalentPair: %w", err)
		}
	}
	return a, b, nil
}
