// Package support holds the contract every pallet depends on: the capabilities
// a hosting runtime must provide for its account identifiers and numeric types.
// Pallets are generic over these constraints so a runtime that cannot supply a
// capability is rejected by the compiler rather than at runtime.
package support

//AccountID is the capability set required of an account identifier. It must be
//comparable and map to a byte key whose lexicographic order is the account's
//total order. Identifiers are never mutated, only compared and copied.
type AccountID interface {
	comparable

	//Key returns a fresh, order-preserving byte encoding of the identifier
	Key() []byte

	String() string
}

//Numeric is the capability set required of a balance-like value. The zero
//value of the type must represent numeric zero.
type Numeric[T any] interface {
	IsZero() bool

	//CheckedAdd returns the sum and false if it would not fit the type
	CheckedAdd(o T) (T, bool)

	//CheckedSub returns the difference and false if it would go below zero
	CheckedSub(o T) (T, bool)

	Cmp(o T) int
	String() string
}

//Counter is a Numeric that can also be incremented by exactly one, as is
//required of block numbers and nonces.
type Counter[T any] interface {
	Numeric[T]
	Inc() T
}
