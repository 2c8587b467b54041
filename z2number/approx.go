// Copyright (c) 2023 Colin McRae

package z2number

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/PSLQ/bignumber"
)

// AsBigNumber returns an approximation of z as a BigNumber, with the precision
// configured for the bignumber package. Z2Number arithmetic never needs this;
// it is for display and for checking exact results against floating point.
//
// With p + q sqrt(2) and e chosen so that z = (p + q sqrt(2)) / 2^e:
//
// c even: p = a, q = b, e = c/2
//
// c odd:  p = 2b, q = a, e = (c+1)/2
func (z *Z2Number) AsBigNumber() (*bignumber.BigNumber, error) {
	if z.IsInt() {
		return bignumber.NewFromInt(&z.a), nil
	}
	p, q, e := &z.a, &z.b, z.c/2
	if z.c%2 == 1 {
		p, q, e = big.NewInt(0).Lsh(&z.b, 1), &z.a, (z.c+1)/2
	}
	sqrt2, err := bignumber.NewFromInt64(0).Sqrt(bignumber.NewFromInt64(2))
	if err != nil {
		return nil, fmt.Errorf("Z2Number.AsBigNumber: could not compute sqrt(2): %q", err.Error())
	}
	retVal := bignumber.NewFromInt(p)
	retVal.MulAdd(bignumber.NewFromInt(q), sqrt2)
	if e == 0 {
		return retVal, nil
	}
	return retVal.Mul(retVal, bignumber.NewPowerOfTwo(-e)), nil
}

// AsFloat returns an approximation of z as a big.Float. See AsBigNumber.
func (z *Z2Number) AsFloat() (*big.Float, error) {
	bn, err := z.AsBigNumber()
	if err != nil {
		return nil, fmt.Errorf("Z2Number.AsFloat: %q", err.Error())
	}
	return bn.AsFloat(), nil
}
