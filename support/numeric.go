package support

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

//U32 is a 32-bit unsigned counter or balance
type U32 uint32

//IsZero returns whether the value is zero
func (n U32) IsZero() bool { return n == 0 }

//CheckedAdd adds o, reporting false on overflow
func (n U32) CheckedAdd(o U32) (U32, bool) {
	s := uint64(n) + uint64(o)
	if s > math.MaxUint32 {
		return 0, false
	}

	return U32(s), true
}

//CheckedSub subtracts o, reporting false on underflow
func (n U32) CheckedSub(o U32) (U32, bool) {
	if o > n {
		return 0, false
	}

	return n - o, true
}

//Inc returns the value plus one, it saturates at the maximum
func (n U32) Inc() U32 {
	if n == math.MaxUint32 {
		return n
	}

	return n + 1
}

//Cmp compares n to o
func (n U32) Cmp(o U32) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	}

	return 0
}

func (n U32) String() string { return strconv.FormatUint(uint64(n), 10) }

//U64 is a 64-bit unsigned counter or balance
type U64 uint64

//IsZero returns whether the value is zero
func (n U64) IsZero() bool { return n == 0 }

//CheckedAdd adds o, reporting false on overflow
func (n U64) CheckedAdd(o U64) (U64, bool) {
	s, carry := bits.Add64(uint64(n), uint64(o), 0)
	if carry != 0 {
		return 0, false
	}

	return U64(s), true
}

//CheckedSub subtracts o, reporting false on underflow
func (n U64) CheckedSub(o U64) (U64, bool) {
	d, borrow := bits.Sub64(uint64(n), uint64(o), 0)
	if borrow != 0 {
		return 0, false
	}

	return U64(d), true
}

//Inc returns the value plus one, it saturates at the maximum
func (n U64) Inc() U64 {
	if n == math.MaxUint64 {
		return n
	}

	return n + 1
}

//Cmp compares n to o
func (n U64) Cmp(o U64) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	}

	return 0
}

func (n U64) String() string { return strconv.FormatUint(uint64(n), 10) }

//ParseU64 parses a base 10 unsigned 64-bit number
func ParseU64(s string) (U64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "failed to parse '%s' as u64", s)
	}

	return U64(v), nil
}
