package support

import (
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

var (
	//decimal context for all u128 arithmetic, with enough precision that the
	//sum of two maximum values is still exact
	u128Ctx = apd.BaseContext.WithPrecision(50)

	u128Max = apd.NewWithBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)), 0)
)

//U128 is a 128-bit unsigned balance. It is backed by an arbitrary precision
//decimal that is bounded to [0, 2^128-1]. The zero value is zero and values are
//immutable: every operation returns a new U128.
type U128 struct {
	d *apd.Decimal
}

//NewU128 creates a u128 from a native unsigned integer
func NewU128(v uint64) U128 {
	return U128{d: apd.NewWithBigInt(new(big.Int).SetUint64(v), 0)}
}

//MaxU128 returns the largest representable u128
func MaxU128() U128 { return U128{d: u128Max} }

//ParseU128 parses a base 10 integer, it must be non-negative and fit in 128 bits
func ParseU128(s string) (n U128, err error) {
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return n, errors.Wrapf(ErrInvalidNumber, "failed to parse '%s' as u128", s)
	}

	d := apd.NewWithBigInt(bi, 0)
	if d.Sign() < 0 || d.Cmp(u128Max) > 0 {
		return n, errors.Wrapf(ErrInvalidNumber, "'%s' is out of the u128 range", s)
	}

	return U128{d: d}, nil
}

func (n U128) dec() *apd.Decimal {
	if n.d == nil {
		return apd.New(0, 0)
	}

	return n.d
}

//IsZero returns whether the value is zero
func (n U128) IsZero() bool { return n.dec().Sign() == 0 }

//CheckedAdd adds o, reporting false if the sum exceeds 2^128-1
func (n U128) CheckedAdd(o U128) (U128, bool) {
	res := new(apd.Decimal)
	if _, err := u128Ctx.Add(res, n.dec(), o.dec()); err != nil {
		return U128{}, false
	}

	if res.Cmp(u128Max) > 0 {
		return U128{}, false
	}

	return U128{d: res}, true
}

//CheckedSub subtracts o, reporting false if the result would be negative
func (n U128) CheckedSub(o U128) (U128, bool) {
	res := new(apd.Decimal)
	if _, err := u128Ctx.Sub(res, n.dec(), o.dec()); err != nil {
		return U128{}, false
	}

	if res.Sign() < 0 {
		return U128{}, false
	}

	return U128{d: res}, true
}

//Inc returns the value plus one, it saturates at the maximum
func (n U128) Inc() U128 {
	v, ok := n.CheckedAdd(NewU128(1))
	if !ok {
		return n
	}

	return v
}

//Cmp compares n to o
func (n U128) Cmp(o U128) int { return n.dec().Cmp(o.dec()) }

func (n U128) String() string { return n.dec().String() }

//MarshalText encodes the value as a base 10 integer
func (n U128) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

//UnmarshalText decodes a base 10 integer
func (n *U128) UnmarshalText(text []byte) (err error) {
	*n, err = ParseU128(string(text))
	return
}
