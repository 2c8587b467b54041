// Copyright (c) 2023 Colin McRae

package util

import (
	"fmt"
	"math/rand"
)

// GetPermutation returns a pseudo-random permutation of {0,...,size-1} drawn
// from r. When size > 1 the permutation is never the identity.
func GetPermutation(r *rand.Rand, size int) []int {
	permutation := r.Perm(size)
	if size < 2 {
		return permutation
	}

	// Return the random permutation if it is not the identity
	for i := 0; i < size; i++ {
		if permutation[i] != i {
			return permutation
		}
	}

	// The random permutation is the identity. Return a random swap.
	src := r.Intn(size)
	dest := r.Intn(size - 1)
	if src <= dest {
		dest++
	}
	permutation[src] = dest
	permutation[dest] = src
	return permutation
}

// GetSigns returns size pseudo-random entries, each 1 or -1
func GetSigns(r *rand.Rand, size int) []int {
	retVal := make([]int, size)
	for i := range retVal {
		retVal[i] = 2*r.Intn(2) - 1
	}
	return retVal
}

// SignedPermutationArray returns the row-major entries of the len(perm) x len(perm)
// matrix P with P[perm[i]][i] = signs[i] and all other entries 0. Multiplying a
// matrix on the left by P moves row i to row perm[i] and multiplies it by signs[i].
func SignedPermutationArray(perm, signs []int) ([]int64, error) {
	dim := len(perm)
	if len(signs) != dim {
		return []int64{}, fmt.Errorf(
			"SignedPermutationArray: %d signs for a permutation of length %d", len(signs), dim,
		)
	}
	retVal := make([]int, dim*dim)
	seen := make([]bool, dim)
	for i := 0; i < dim; i++ {
		if perm[i] < 0 || dim <= perm[i] || seen[perm[i]] {
			return []int64{}, fmt.Errorf("SignedPermutationArray: %v is not a permutation", perm)
		}
		if signs[i] != 1 && signs[i] != -1 {
			return []int64{}, fmt.Errorf("SignedPermutationArray: sign %d is not 1 or -1", signs[i])
		}
		seen[perm[i]] = true
		retVal[perm[i]*dim+i] = signs[i]
	}
	return CopyIntToInt64(retVal), nil
}

// CopyInt64ToInt converts an int64 matrix to an int matrix
func CopyInt64ToInt(input []int64) []int {
	retVal := make([]int, len(input))
	for i := 0; i < len(input); i++ {
		retVal[i] = int(input[i])
	}
	return retVal
}

// CopyIntToInt64 converts an int matrix to an int64 matrix
func CopyIntToInt64(input []int) []int64 {
	retVal := make([]int64, len(input))
	for i := 0; i < len(input); i++ {
		retVal[i] = int64(input[i])
	}
	return retVal
}

func ArraysAreEqual(x []int64, y []int64) bool {
	xLen := len(x)
	if len(y) != xLen {
		return false
	}
	for i := 0; i < xLen; i++ {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
