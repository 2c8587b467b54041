// Copyright (c) 2023 Colin McRae

// Package z2matrix represents a matrix with entries in Z[1/sqrt(2)], and tests
// whether two such matrices are related by a signed permutation
package z2matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/predrag3141/Z2Equivalence/z2number"
)

var (
	// ErrShapeMismatch is returned when operands have incompatible dimensions,
	// vectors have unequal lengths, or input rows are ragged or empty.
	ErrShapeMismatch = errors.New("z2matrix: shape mismatch")

	// ErrOutOfRange is returned when a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("z2matrix: index out of range")
)

// Z2Matrix is a rectangular matrix of Z2Numbers, stored row by row. Since
// Z2Numbers are immutable, a Z2Matrix is plain data: methods that change an
// entry return a new Z2Matrix.
type Z2Matrix struct {
	values  []*z2number.Z2Number
	numRows int
	numCols int
}

// NewFromRows creates a matrix from rows, all of which must have the same
// positive length. If rows is empty, any row is empty, or the rows are ragged,
// an error is returned.
func NewFromRows(rows [][]*z2number.Z2Number) (*Z2Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Z2Matrix.NewFromRows: %w: empty input", ErrShapeMismatch)
	}
	numRows, numCols := len(rows), len(rows[0])
	retVal := &Z2Matrix{
		values:  make([]*z2number.Z2Number, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	for i, row := range rows {
		if len(row) != numCols {
			return nil, fmt.Errorf(
				"Z2Matrix.NewFromRows: %w: row %d has %d entries but row 0 has %d",
				ErrShapeMismatch, i, len(row), numCols,
			)
		}
		for j, entry := range row {
			if entry == nil {
				return nil, fmt.Errorf("Z2Matrix.NewFromRows: nil entry at [%d][%d]", i, j)
			}
			retVal.values[i*numCols+j] = entry
		}
	}
	return retVal, nil
}

// NewFromInt64Triples creates a matrix from row-major input of (a, b, c) triples
// with dimensions numRowsIn x numColsIn. Each triple is canonicalized. If the
// dimensions are not positive, do not match the length of the input, or a
// triple has c < 0, an error is returned.
func NewFromInt64Triples(input [][3]int64, numRowsIn int, numColsIn int) (*Z2Matrix, error) {
	if err := checkDimensions(len(input), numRowsIn, numColsIn, "NewFromInt64Triples"); err != nil {
		return nil, err
	}
	retVal := &Z2Matrix{
		values:  make([]*z2number.Z2Number, numRowsIn*numColsIn),
		numRows: numRowsIn,
		numCols: numColsIn,
	}
	for index, triple := range input {
		z, err := z2number.New(triple[0], triple[1], triple[2])
		if err != nil {
			return nil, fmt.Errorf(
				"Z2Matrix.NewFromInt64Triples: could not create entry %d from %v: %w",
				index, triple, err,
			)
		}
		retVal.values[index] = z
	}
	return retVal, nil
}

// NewFromInt64Array creates a matrix with integer-valued Z2Numbers from input
// with dimensions numRowsIn x numColsIn. If the number of rows and columns are
// not positive and/or do not match the length of the input, an error is returned.
func NewFromInt64Array(input []int64, numRowsIn int, numColsIn int) (*Z2Matrix, error) {
	if err := checkDimensions(len(input), numRowsIn, numColsIn, "NewFromInt64Array"); err != nil {
		return nil, err
	}
	retVal := &Z2Matrix{
		values:  make([]*z2number.Z2Number, numRowsIn*numColsIn),
		numRows: numRowsIn,
		numCols: numColsIn,
	}
	for index, value := range input {
		retVal.values[index] = z2number.NewFromInt64(value)
	}
	return retVal, nil
}

// NewEmpty returns a numRows x numCols matrix with 0s in each value. Negative numRows
// or numCols is interpreted as 0, and a 0 x n or n x 0 matrix is interpreted as 0 x 0.
func NewEmpty(numRows int, numCols int) *Z2Matrix {
	if numRows <= 0 || numCols <= 0 {
		return &Z2Matrix{}
	}
	retVal := &Z2Matrix{
		values:  make([]*z2number.Z2Number, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	zero := z2number.Zero()
	for i := range retVal.values {
		retVal.values[i] = zero
	}
	return retVal
}

// NewIdentity returns a dim x dim identity matrix. If dim < 1,
// an error is returned.
func NewIdentity(dim int) (*Z2Matrix, error) {
	if dim < 1 {
		return nil, fmt.Errorf("NewIdentity: %w: dimension %d < 1", ErrShapeMismatch, dim)
	}
	retVal := NewEmpty(dim, dim)
	one := z2number.One()
	for i := 0; i < dim; i++ {
		retVal.values[i*dim+i] = one
	}
	return retVal, nil
}

// DotProduct returns sum(x[k] y[k]), summed in order of increasing k starting
// from 0. If x and y have different lengths, an error wrapping ErrShapeMismatch
// is returned. The dot product of two empty vectors is 0.
func DotProduct(x, y []*z2number.Z2Number) (*z2number.Z2Number, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"DotProduct: %w: vectors of unequal length %d and %d", ErrShapeMismatch, len(x), len(y),
		)
	}
	retVal := z2number.Zero()
	for k := range x {
		retVal = retVal.MulAdd(x[k], y[k])
	}
	return retVal, nil
}

// MatrixMultiply returns the matrix xy. If the number of columns of x does not
// match the number of rows of y, an error wrapping ErrShapeMismatch is returned.
func MatrixMultiply(x *Z2Matrix, y *Z2Matrix) (*Z2Matrix, error) {
	err := checkInput(x, y, "Mul")
	if err != nil {
		return nil, err
	}
	retVal := NewEmpty(x.numRows, y.numCols)
	column := make([]*z2number.Z2Number, y.numRows)
	for j := 0; j < y.numCols; j++ {
		for k := 0; k < y.numRows; k++ {
			column[k] = y.values[k*y.numCols+j]
		}
		for i := 0; i < x.numRows; i++ {
			retVal.values[i*retVal.numCols+j], err = DotProduct(x.rowSlice(i), column)
			if err != nil {
				return nil, fmt.Errorf("Z2Matrix.Mul: error when computing dot product: %w", err)
			}
		}
	}
	return retVal, nil
}

// Mul replaces the contents of zm with the matrix xy and returns zm. If
// dimensions of x and y are invalid or do not match, an error is returned
// and zm is unchanged.
func (zm *Z2Matrix) Mul(x *Z2Matrix, y *Z2Matrix) (*Z2Matrix, error) {
	retVal, err := MatrixMultiply(x, y)
	if err != nil {
		return nil, err
	}
	*zm = *retVal
	return zm, nil
}

// Transpose returns the transpose of zm
func (zm *Z2Matrix) Transpose() *Z2Matrix {
	retVal := NewEmpty(zm.numCols, zm.numRows)
	for i := 0; i < retVal.numRows; i++ {
		for j := 0; j < retVal.numCols; j++ {
			retVal.values[i*retVal.numCols+j] = zm.values[j*zm.numCols+i]
		}
	}
	return retVal
}

// Get returns the value in row i, column j of zm. Z2Numbers are immutable,
// so the returned value can be kept without copying.
func (zm *Z2Matrix) Get(i int, j int) (*z2number.Z2Number, error) {
	if err := zm.checkIndices(i, j, "Get"); err != nil {
		return nil, err
	}
	return zm.values[i*zm.numCols+j], nil
}

// Set returns a copy of zm with the value in row i, column j replaced by x
func (zm *Z2Matrix) Set(i int, j int, x *z2number.Z2Number) (*Z2Matrix, error) {
	if err := zm.checkIndices(i, j, "Set"); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, fmt.Errorf("Z2Matrix.Set: nil value for [%d][%d]", i, j)
	}
	retVal := zm.copy()
	retVal.values[i*zm.numCols+j] = x
	return retVal, nil
}

// Row returns a copy of row i of zm
func (zm *Z2Matrix) Row(i int) ([]*z2number.Z2Number, error) {
	if err := zm.checkIndices(i, 0, "Row"); err != nil {
		return nil, err
	}
	retVal := make([]*z2number.Z2Number, zm.numCols)
	copy(retVal, zm.rowSlice(i))
	return retVal, nil
}

// Column returns a copy of column j of zm
func (zm *Z2Matrix) Column(j int) ([]*z2number.Z2Number, error) {
	if err := zm.checkIndices(0, j, "Column"); err != nil {
		return nil, err
	}
	retVal := make([]*z2number.Z2Number, zm.numRows)
	for i := 0; i < zm.numRows; i++ {
		retVal[i] = zm.values[i*zm.numCols+j]
	}
	return retVal, nil
}

// PermuteRows returns the matrix whose row perm[i] is signs[i] times row i of
// zm. perm must be a permutation of {0,...,numRows-1} and each signs[i] must be
// 1 or -1, or an error is returned. A nil signs means all signs are 1.
func (zm *Z2Matrix) PermuteRows(perm []int, signs []int) (*Z2Matrix, error) {
	if len(perm) != zm.numRows {
		return nil, fmt.Errorf(
			"Z2Matrix.PermuteRows: %w: permutation of length %d for %d rows",
			ErrShapeMismatch, len(perm), zm.numRows,
		)
	}
	if signs != nil && len(signs) != zm.numRows {
		return nil, fmt.Errorf(
			"Z2Matrix.PermuteRows: %w: %d signs for %d rows", ErrShapeMismatch, len(signs), zm.numRows,
		)
	}
	retVal := NewEmpty(zm.numRows, zm.numCols)
	seen := make([]bool, zm.numRows)
	for i, destRow := range perm {
		if destRow < 0 || zm.numRows <= destRow {
			return nil, fmt.Errorf(
				"Z2Matrix.PermuteRows: %w: row %d not in {0,...,%d}", ErrOutOfRange, destRow, zm.numRows-1,
			)
		}
		if seen[destRow] {
			return nil, fmt.Errorf("Z2Matrix.PermuteRows: row %d appears twice in %v", destRow, perm)
		}
		seen[destRow] = true
		negate := false
		if signs != nil {
			switch signs[i] {
			case 1:
			case -1:
				negate = true
			default:
				return nil, fmt.Errorf("Z2Matrix.PermuteRows: sign %d is not 1 or -1", signs[i])
			}
		}
		for k := 0; k < zm.numCols; k++ {
			entry := zm.values[i*zm.numCols+k]
			if negate {
				entry = entry.Neg()
			}
			retVal.values[destRow*zm.numCols+k] = entry
		}
	}
	return retVal, nil
}

// IsSignedPermutation reports whether zm is square, with exactly one nonzero
// entry in each row and column, each nonzero entry being 1 or -1.
func (zm *Z2Matrix) IsSignedPermutation() bool {
	if zm.numRows != zm.numCols || zm.numRows == 0 {
		return false
	}
	columnUsed := make([]bool, zm.numCols)
	for i := 0; i < zm.numRows; i++ {
		nonZeroCount := 0
		for j := 0; j < zm.numCols; j++ {
			entry := zm.values[i*zm.numCols+j]
			if entry.IsZero() {
				continue
			}
			if !(entry.EqualsInt64(1) || entry.EqualsInt64(-1)) || columnUsed[j] {
				return false
			}
			columnUsed[j] = true
			nonZeroCount++
		}
		if nonZeroCount != 1 {
			return false
		}
	}
	return true
}

// Equals reports whether zm and x have the same dimensions and equal entries
func (zm *Z2Matrix) Equals(x *Z2Matrix) bool {
	if zm.numRows != x.numRows || zm.numCols != x.numCols {
		return false
	}
	for i := range zm.values {
		if !zm.values[i].Equals(x.values[i]) {
			return false
		}
	}
	return true
}

// Dimensions returns the number of rows and columns in zm, in that order.
func (zm *Z2Matrix) Dimensions() (int, int) {
	return zm.numRows, zm.numCols
}

// NumRows returns the number of rows in zm
func (zm *Z2Matrix) NumRows() int {
	return zm.numRows
}

// NumCols returns the number of columns in zm
func (zm *Z2Matrix) NumCols() int {
	return zm.numCols
}

// String returns a string representing zm with rows separated by newlines,
// and each entry written as its canonical triple.
func (zm *Z2Matrix) String() string {
	return zm.format(func(z *z2number.Z2Number) string { return z.String() })
}

// PrettyString is like String, but writes entries as expressions in sqrt(2)
func (zm *Z2Matrix) PrettyString() string {
	return zm.format(func(z *z2number.Z2Number) string { return z.PrettyString() })
}

func (zm *Z2Matrix) format(entryString func(*z2number.Z2Number) string) string {
	var sb strings.Builder
	for i := 0; i < zm.numRows; i++ {
		for j := 0; j < zm.numCols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(entryString(zm.values[i*zm.numCols+j]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// rowSlice returns row i of zm without copying. Callers must not modify it.
func (zm *Z2Matrix) rowSlice(i int) []*z2number.Z2Number {
	return zm.values[i*zm.numCols : (i+1)*zm.numCols]
}

func (zm *Z2Matrix) copy() *Z2Matrix {
	retVal := &Z2Matrix{
		values:  make([]*z2number.Z2Number, len(zm.values)),
		numRows: zm.numRows,
		numCols: zm.numCols,
	}
	copy(retVal.values, zm.values)
	return retVal
}

func (zm *Z2Matrix) checkIndices(i, j int, caller string) error {
	if i < 0 || zm.numRows <= i {
		return fmt.Errorf(
			"Z2Matrix.%s: %w: index i = %d outside range {0, ... %d}", caller, ErrOutOfRange, i, zm.numRows-1,
		)
	}
	if j < 0 || zm.numCols <= j {
		return fmt.Errorf(
			"Z2Matrix.%s: %w: index j = %d outside range {0, ... %d}", caller, ErrOutOfRange, j, zm.numCols-1,
		)
	}
	return nil
}

func checkDimensions(inputLen, numRows, numCols int, caller string) error {
	if numRows <= 0 || numCols <= 0 {
		return fmt.Errorf(
			"Z2Matrix.%s: %w: illegal number of rows %d or columns %d",
			caller, ErrShapeMismatch, numRows, numCols,
		)
	}
	if inputLen != numRows*numCols {
		return fmt.Errorf(
			"Z2Matrix.%s: %w: length %d of input does not match dimensions %d x %d",
			caller, ErrShapeMismatch, inputLen, numRows, numCols,
		)
	}
	return nil
}

func checkInput(x, y *Z2Matrix, caller string) error {
	if x == nil || y == nil {
		return fmt.Errorf("Z2Matrix.%s: nil operand", caller)
	}
	for _, m := range []*Z2Matrix{x, y} {
		if m.numRows <= 0 || m.numCols <= 0 || len(m.values) != m.numRows*m.numCols {
			return fmt.Errorf(
				"Z2Matrix.%s: %w: malformed input matrix [%d][%d] with %d entries",
				caller, ErrShapeMismatch, m.numRows, m.numCols, len(m.values),
			)
		}
	}
	if caller == "Mul" && x.numCols != y.numRows {
		return fmt.Errorf(
			"Z2Matrix.Mul: %w: mismatched dimensions for operands x (%d x %d) and y (%d x %d)",
			ErrShapeMismatch, x.numRows, x.numCols, y.numRows, y.numCols,
		)
	}
	return nil
}
