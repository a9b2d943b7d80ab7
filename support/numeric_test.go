package support_test

import (
	"math"
	"testing"

	"github.com/advanderveer/pallets/support"
	"github.com/advanderveer/go-test"
	"github.com/pkg/errors"
)

func TestU32CheckedArithmetic(t *testing.T) {
	s, ok := support.U32(1).CheckedAdd(2)
	test.Equals(t, true, ok)
	test.Equals(t, support.U32(3), s)

	_, ok = support.U32(math.MaxUint32).CheckedAdd(1)
	test.Equals(t, false, ok)

	d, ok := support.U32(5).CheckedSub(5)
	test.Equals(t, true, ok)
	test.Equals(t, true, d.IsZero())

	_, ok = support.U32(5).CheckedSub(6)
	test.Equals(t, false, ok)

	test.Equals(t, support.U32(1), support.U32(0).Inc())
	test.Equals(t, support.U32(math.MaxUint32), support.U32(math.MaxUint32).Inc())
	test.Equals(t, -1, support.U32(1).Cmp(2))
	test.Equals(t, "42", support.U32(42).String())
}

func TestU64CheckedArithmetic(t *testing.T) {
	_, ok := support.U64(math.MaxUint64).CheckedAdd(1)
	test.Equals(t, false, ok)

	s, ok := support.U64(math.MaxUint64 - 1).CheckedAdd(1)
	test.Equals(t, true, ok)
	test.Equals(t, support.U64(math.MaxUint64), s)

	_, ok = support.U64(0).CheckedSub(1)
	test.Equals(t, false, ok)

	test.Equals(t, support.U64(math.MaxUint64), support.U64(math.MaxUint64).Inc())
	test.Equals(t, 1, support.U64(2).Cmp(1))

	n, err := support.ParseU64("18446744073709551615")
	test.Ok(t, err)
	test.Equals(t, support.U64(math.MaxUint64), n)

	_, err = support.ParseU64("-1")
	test.Equals(t, support.ErrInvalidNumber, errors.Cause(err))
}

func TestU128CheckedArithmetic(t *testing.T) {
	var zero support.U128
	test.Equals(t, true, zero.IsZero())
	test.Equals(t, "0", zero.String())

	s, ok := support.NewU128(100).CheckedAdd(support.NewU128(50))
	test.Equals(t, true, ok)
	test.Equals(t, "150", s.String())

	d, ok := support.NewU128(100).CheckedSub(support.NewU128(100))
	test.Equals(t, true, ok)
	test.Equals(t, true, d.IsZero())

	_, ok = support.NewU128(100).CheckedSub(support.NewU128(150))
	test.Equals(t, false, ok)

	_, ok = zero.CheckedSub(support.NewU128(1))
	test.Equals(t, false, ok)

	max := support.MaxU128()
	test.Equals(t, "340282366920938463463374607431768211455", max.String())

	_, ok = max.CheckedAdd(support.NewU128(1))
	test.Equals(t, false, ok)

	_, ok = max.CheckedAdd(max)
	test.Equals(t, false, ok)

	s, ok = max.CheckedAdd(zero)
	test.Equals(t, true, ok)
	test.Equals(t, 0, s.Cmp(max))

	test.Equals(t, 0, max.Inc().Cmp(max))
	test.Equals(t, "1", zero.Inc().String())
	test.Equals(t, -1, zero.Cmp(support.NewU128(1)))
}

func TestU128Parsing(t *testing.T) {
	n, err := support.ParseU128("340282366920938463463374607431768211455")
	test.Ok(t, err)
	test.Equals(t, 0, n.Cmp(support.MaxU128()))

	for _, s := range []string{
		"340282366920938463463374607431768211456",
		"-1",
		"1.5",
		"abc",
		"",
	} {
		_, err = support.ParseU128(s)
		test.Equals(t, support.ErrInvalidNumber, errors.Cause(err))
	}

	var v support.U128
	test.Ok(t, v.UnmarshalText([]byte("1000")))
	test.Equals(t, "1000", v.String())

	txt, err := v.MarshalText()
	test.Ok(t, err)
	test.Equals(t, []byte("1000"), txt)
}
