package support

import (
	"bytes"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

//Name is a human readable account identifier such as "alice"
type Name string

//Key returns the name's bytes
func (n Name) Key() []byte { return []byte(n) }

func (n Name) String() string { return string(n) }

//PKSize is the length of a public key identity
const PKSize = 32

//PK is a fixed-size public key identity. Its textual form is base58.
type PK [PKSize]byte

//Key returns a copy of the key bytes
func (pk PK) Key() []byte {
	k := make([]byte, PKSize)
	copy(k, pk[:])
	return k
}

func (pk PK) String() string { return base58.Encode(pk[:]) }

//Less reports whether pk sorts before o
func (pk PK) Less(o PK) bool { return bytes.Compare(pk[:], o[:]) < 0 }

//MarshalText encodes the key as base58
func (pk PK) MarshalText() ([]byte, error) { return []byte(pk.String()), nil }

//UnmarshalText decodes a base58 key
func (pk *PK) UnmarshalText(text []byte) (err error) {
	*pk, err = ParsePK(string(text))
	return
}

//ParsePK decodes a base58 encoded public key
func ParsePK(s string) (pk PK, err error) {
	b, err := base58.Decode(s)
	if err != nil {
		return pk, errors.Wrapf(ErrInvalidAccount, "failed to decode base58 '%s': %v", s, err)
	}

	if len(b) != PKSize {
		return pk, errors.Wrapf(ErrInvalidAccount, "public key has %d bytes, expected %d", len(b), PKSize)
	}

	copy(pk[:], b)
	return
}
