// Copyright (c) 2023 Colin McRae

// Package z2number represents exact elements of the ring Z[1/sqrt(2)]
package z2number

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Z2Number is an element of Z[1/sqrt(2)]. It
// o Has the value (a + b sqrt(2)) / sqrt(2)^c with integers a and b of any size,
//   and a non-negative integer c
// o Is always in canonical form: either c == 0 or a is odd. Zero is (0, 0, 0).
// o Is immutable. Every operation returns a new Z2Number, so values can be
//   shared freely.
//
// Because the canonical form is unique, two Z2Numbers have the same value
// exactly when their triples (a, b, c) are identical.
type Z2Number struct {
	a big.Int
	b big.Int
	c int64
}

// Triple is the plain (a, b, c) representation of a Z2Number, not necessarily
// canonical. A nil A or B is read as 0.
type Triple struct {
	A *big.Int
	B *big.Int
	C int64
}

var (
	// ErrNegativeExponent is returned when a denominator exponent c < 0 is supplied
	ErrNegativeExponent = errors.New("z2number: negative denominator exponent")

	// ErrNotInt64 is returned when a value is not an integer that fits in an int64
	ErrNotInt64 = errors.New("z2number: not representable as int64")
)

// New returns the canonical Z2Number with value (a + b sqrt(2)) / sqrt(2)^c.
// If c < 0 an error is returned.
func New(a, b, c int64) (*Z2Number, error) {
	return NewFromBigInt(big.NewInt(a), big.NewInt(b), c)
}

// NewFromBigInt returns the canonical Z2Number with value (a + b sqrt(2)) / sqrt(2)^c.
// a and b are copied. If c < 0 an error is returned.
func NewFromBigInt(a, b *big.Int, c int64) (*Z2Number, error) {
	if c < 0 {
		return nil, fmt.Errorf("Z2Number.NewFromBigInt: %w: c = %d", ErrNegativeExponent, c)
	}
	if a == nil {
		a = big.NewInt(0)
	}
	if b == nil {
		b = big.NewInt(0)
	}
	return fromCanonical(Canonicalize(a, b, c)), nil
}

// NewFromTriple returns the canonical Z2Number with the value of t
func NewFromTriple(t Triple) (*Z2Number, error) {
	return NewFromBigInt(t.A, t.B, t.C)
}

// NewFromInt64 returns the integer-valued Z2Number equal to input
func NewFromInt64(input int64) *Z2Number {
	return MustNew(input, 0, 0)
}

// MustNew is like New but panics if c < 0. It is meant for literals.
func MustNew(a, b, c int64) *Z2Number {
	retVal, err := New(a, b, c)
	if err != nil {
		panic(err)
	}
	return retVal
}

// Zero returns 0
func Zero() *Z2Number {
	return &Z2Number{}
}

// One returns 1
func One() *Z2Number {
	return NewFromInt64(1)
}

// Root2 returns sqrt(2)
func Root2() *Z2Number {
	return MustNew(0, 1, 0)
}

// InverseRoot2 returns 1/sqrt(2)
func InverseRoot2() *Z2Number {
	return MustNew(1, 0, 1)
}

// Canonicalize returns the canonical triple for the value (a + b sqrt(2)) / sqrt(2)^c,
// where c >= 0. Whenever a is even and c > 0, sqrt(2) is factored out of the numerator:
//
// (a + b sqrt(2)) / sqrt(2)^c = (b + (a/2) sqrt(2)) / sqrt(2)^(c-1)
//
// Zero always comes out as (0, 0, 0). a and b are not modified, and applying
// Canonicalize to its own output returns the same triple.
func Canonicalize(a, b *big.Int, c int64) (*big.Int, *big.Int, int64) {
	retA := big.NewInt(0).Set(a)
	retB := big.NewInt(0).Set(b)
	if retA.BitLen() == 0 && retB.BitLen() == 0 {
		return retA, retB, 0
	}
	for c > 0 && retA.Bit(0) == 0 {
		// retA is even, so halving is exact for either sign
		halfA := retA.Rsh(retA, 1)
		retA, retB = retB, halfA
		c--
	}
	return retA, retB, c
}

// Scale returns a triple with denominator exponent target and the same value as
// (a + b sqrt(2)) / sqrt(2)^c. Each step multiplies the numerator by sqrt(2):
//
// (a + b sqrt(2)) / sqrt(2)^c = (2b + a sqrt(2)) / sqrt(2)^(c+1)
//
// If target <= c, copies of a, b and c are returned. a and b are not modified.
func Scale(a, b *big.Int, c, target int64) (*big.Int, *big.Int, int64) {
	retA := big.NewInt(0).Set(a)
	retB := big.NewInt(0).Set(b)
	if target <= c {
		return retA, retB, c
	}

	// Scaling by an even number of steps is multiplication by a power of 2,
	// so only a possible last odd step needs the swap.
	steps := target - c
	if steps >= 2 {
		retA.Lsh(retA, uint(steps/2))
		retB.Lsh(retB, uint(steps/2))
	}
	if steps%2 == 1 {
		doubleB := retB.Lsh(retB, 1)
		retA, retB = doubleB, retA
	}
	return retA, retB, target
}

// A returns a copy of the rational coefficient of the numerator of z
func (z *Z2Number) A() *big.Int {
	return big.NewInt(0).Set(&z.a)
}

// B returns a copy of the sqrt(2) coefficient of the numerator of z
func (z *Z2Number) B() *big.Int {
	return big.NewInt(0).Set(&z.b)
}

// C returns the power of sqrt(2) in the denominator of z
func (z *Z2Number) C() int64 {
	return z.c
}

// DenominatorExponent returns the least k such that sqrt(2)^k z is in Z[sqrt(2)].
// For a canonical Z2Number this is c.
func (z *Z2Number) DenominatorExponent() int64 {
	return z.c
}

// Triple returns the canonical triple of z. This is a deep copy.
func (z *Z2Number) Triple() Triple {
	return Triple{A: z.A(), B: z.B(), C: z.c}
}

// Add returns z + y
func (z *Z2Number) Add(y *Z2Number) *Z2Number {
	return z.addOrSub(y, false)
}

// Sub returns z - y
func (z *Z2Number) Sub(y *Z2Number) *Z2Number {
	return z.addOrSub(y, true)
}

// Neg returns -z. Negation preserves canonical form.
func (z *Z2Number) Neg() *Z2Number {
	retVal := &Z2Number{c: z.c}
	retVal.a.Neg(&z.a)
	retVal.b.Neg(&z.b)
	return retVal
}

// Mul returns zy, using
//
// (a + b sqrt(2))(a' + b' sqrt(2)) = (aa' + 2bb') + (ab' + ba') sqrt(2)
//
// with the denominator exponents adding.
func (z *Z2Number) Mul(y *Z2Number) *Z2Number {
	if z.IsZero() || y.IsZero() {
		return Zero()
	}
	a := big.NewInt(0).Mul(&z.a, &y.a)
	bb := big.NewInt(0).Mul(&z.b, &y.b)
	a.Add(a, bb.Lsh(bb, 1))
	b := big.NewInt(0).Mul(&z.a, &y.b)
	b.Add(b, big.NewInt(0).Mul(&z.b, &y.a))
	return fromCanonical(Canonicalize(a, b, z.c+y.c))
}

// MulAdd returns z + xy. This is the accumulation step of a dot product.
func (z *Z2Number) MulAdd(x, y *Z2Number) *Z2Number {
	xy := x.Mul(y)
	if z.IsZero() {
		return xy
	}
	return z.Add(xy)
}

// MulRoot2 returns z sqrt(2)
func (z *Z2Number) MulRoot2() *Z2Number {
	// z sqrt(2) = (2b + a sqrt(2)) / sqrt(2)^c
	doubleB := big.NewInt(0).Lsh(&z.b, 1)
	return fromCanonical(Canonicalize(doubleB, &z.a, z.c))
}

// DivRoot2 returns z / sqrt(2)
func (z *Z2Number) DivRoot2() *Z2Number {
	if z.IsZero() {
		return Zero()
	}
	return fromCanonical(Canonicalize(&z.a, &z.b, z.c+1))
}

// Abs returns |z|
func (z *Z2Number) Abs() *Z2Number {
	if z.Sign() < 0 {
		return z.Neg()
	}
	return z
}

// Sign returns -1, 0 or +1 according to whether z < 0, z == 0 or z > 0.
//
// The denominator is positive, so the sign is that of a + b sqrt(2). When a
// and b have opposite signs, a + b sqrt(2) > 0 <=> a > -b sqrt(2), which is
// decided by comparing a^2 with 2b^2. Equality a^2 == 2b^2 is impossible unless
// a == b == 0, since sqrt(2) is irrational.
func (z *Z2Number) Sign() int {
	signA := z.a.Sign()
	signB := z.b.Sign()
	if signA == 0 {
		return signB
	}
	if signB == 0 || signA == signB {
		return signA
	}
	aSquared := big.NewInt(0).Mul(&z.a, &z.a)
	twoBSquared := big.NewInt(0).Mul(&z.b, &z.b)
	twoBSquared.Lsh(twoBSquared, 1)
	if aSquared.Cmp(twoBSquared) > 0 {
		return signA
	}
	return signB
}

// Cmp compares z and y and returns:
//
// -1 if z <  y
//
//	0 if z == y
//
// +1 if z >  y
func (z *Z2Number) Cmp(y *Z2Number) int {
	if z.Equals(y) {
		return 0
	}
	return z.Sub(y).Sign()
}

// Equals reports whether z and y have the same value, which for canonical
// Z2Numbers means identical triples.
func (z *Z2Number) Equals(y *Z2Number) bool {
	return z.c == y.c && z.a.Cmp(&y.a) == 0 && z.b.Cmp(&y.b) == 0
}

// EqualsTriple reports whether z has the value of the triple t. t need not be
// canonical; it is canonicalized before comparing. A triple with t.C < 0 equals
// nothing.
func (z *Z2Number) EqualsTriple(t Triple) bool {
	y, err := NewFromTriple(t)
	if err != nil {
		return false
	}
	return z.Equals(y)
}

// EqualsInt64 reports whether z is the integer i
func (z *Z2Number) EqualsInt64(i int64) bool {
	return z.c == 0 && z.b.BitLen() == 0 && z.a.IsInt64() && z.a.Int64() == i
}

// IsZero reports whether z is equal to 0
func (z *Z2Number) IsZero() bool {
	return z.a.BitLen() == 0 && z.b.BitLen() == 0
}

// IsInt reports whether z is an integer
func (z *Z2Number) IsInt() bool {
	return z.c == 0 && z.b.BitLen() == 0
}

// AsInt64 returns z as an int64, if possible; otherwise 0 with an error
func (z *Z2Number) AsInt64() (int64, error) {
	if !z.IsInt() {
		return 0, fmt.Errorf("Z2Number.AsInt64: %w: %s is not an integer", ErrNotInt64, z.String())
	}
	if !z.a.IsInt64() {
		return 0, fmt.Errorf("Z2Number.AsInt64: %w: %s is too large", ErrNotInt64, z.a.String())
	}
	return z.a.Int64(), nil
}

// String formats z as its canonical triple [a, b, c]
func (z *Z2Number) String() string {
	return fmt.Sprintf("[%s, %s, %d]", z.a.String(), z.b.String(), z.c)
}

// PrettyString formats z as an expression, writing 1/sqrt(2)^c as e-c:
//
// 0, 3, -1√2, 3e-1, 5√2e-3, (1+1√2)e-3, (1-2√2)
func (z *Z2Number) PrettyString() string {
	var sb strings.Builder
	hasA := z.a.BitLen() != 0
	hasB := z.b.BitLen() != 0
	switch {
	case !hasA && !hasB:
		return "0"
	case hasA && hasB:
		sb.WriteString("(")
		sb.WriteString(z.a.String())
		if z.b.Sign() > 0 {
			sb.WriteString("+")
		}
		sb.WriteString(z.b.String())
		sb.WriteString("√2)")
	case hasA:
		sb.WriteString(z.a.String())
	default:
		sb.WriteString(z.b.String())
		sb.WriteString("√2")
	}
	if z.c != 0 {
		sb.WriteString(fmt.Sprintf("e-%d", z.c))
	}
	return sb.String()
}

func (z *Z2Number) addOrSub(y *Z2Number, subtract bool) *Z2Number {
	// Scaling both terms to the larger exponent costs no more than scaling
	// the one with the smaller exponent, since the other is already there.
	target := z.c
	if y.c > target {
		target = y.c
	}
	za, zb, _ := Scale(&z.a, &z.b, z.c, target)
	ya, yb, _ := Scale(&y.a, &y.b, y.c, target)
	if subtract {
		za.Sub(za, ya)
		zb.Sub(zb, yb)
	} else {
		za.Add(za, ya)
		zb.Add(zb, yb)
	}
	return fromCanonical(Canonicalize(za, zb, target))
}

// fromCanonical wraps a triple already returned by Canonicalize. The big.Ints
// are not shared with anything else, so they are copied by value.
func fromCanonical(a, b *big.Int, c int64) *Z2Number {
	retVal := &Z2Number{c: c}
	retVal.a.Set(a)
	retVal.b.Set(b)
	return retVal
}
