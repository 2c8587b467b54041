// Copyright (c) 2023 Colin McRae

package z2matrix

import (
	"fmt"
	"math/big"
)

// AreEquivalent reports whether a and b are related by a signed permutation,
// that is, whether the matrix with entry (r, s) equal to the dot product of row
// r of a with row s of b (the product of a with the transpose of b) is a signed
// permutation matrix. Stored as lists of column vectors, this is the transpose
// of a times b.
//
// The product is never formed. For each row r of a, the dot products with the
// rows of b are computed one at a time, and the scan stops at the first entry
// that is not in {-1, 0, 1}, at a second nonzero entry in the row, or at a
// nonzero entry in a column that already has one. A row with no nonzero entry
// also means a and b are not equivalent.
//
// If a and b have rows of different lengths, or either is malformed, an error
// wrapping ErrShapeMismatch is returned. Otherwise the error is nil.
func AreEquivalent(a, b *Z2Matrix) (bool, error) {
	err := checkInput(a, b, "AreEquivalent")
	if err != nil {
		return false, err
	}
	if a.numCols != b.numCols {
		return false, fmt.Errorf(
			"AreEquivalent: %w: rows of a have length %d but rows of b have length %d",
			ErrShapeMismatch, a.numCols, b.numCols,
		)
	}
	if a.numRows != b.numRows {
		// The product would not be square
		return false, nil
	}

	columnUsed := make([]bool, b.numRows)
	for r := 0; r < a.numRows; r++ {
		// tot is the sum of the squares of the entries seen so far in row r
		// of the product. Entries are in {-1, 0, 1}, so tot counts nonzero entries.
		tot := big.NewInt(0)
		for s := 0; s < b.numRows; s++ {
			product, err := DotProduct(a.rowSlice(r), b.rowSlice(s))
			if err != nil {
				return false, fmt.Errorf("AreEquivalent: could not compute row %d of a times row %d of b: %w", r, s, err)
			}

			// product is canonical, so it is an integer exactly when b and c are 0
			if product.B().BitLen() != 0 || product.C() != 0 {
				return false, nil
			}
			productA := product.A()
			tot.Add(tot, productA.Mul(productA, productA))
			if tot.Cmp(big.NewInt(1)) > 0 {
				return false, nil
			}
			if !product.IsZero() {
				if columnUsed[s] {
					return false, nil
				}
				columnUsed[s] = true
			}
		}
		if tot.Cmp(big.NewInt(1)) != 0 {
			return false, nil
		}
	}
	return true, nil
}
