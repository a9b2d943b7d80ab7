package runtime

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/advanderveer/pallets/balances"
	"github.com/advanderveer/pallets/system"
	"golang.org/x/crypto/blake2b"
)

//Hash identifies an extrinsic or block
type Hash [blake2b.Size256]byte

func (h Hash) String() string { return fmt.Sprintf("%.4x", h[:]) }

//Header carries the number the block claims to have
type Header struct {
	Number BlockNumber
}

//Extrinsic is a call submitted on behalf of a caller
type Extrinsic struct {
	Caller AccountID
	Call   Call
}

//Block is an ordered list of extrinsics that are applied together
type Block struct {
	Header     Header
	Extrinsics []*Extrinsic
}

//Hash the extrinsic
func (xt *Extrinsic) Hash() (id Hash) {
	h := newHasher()
	writeBytes(h, xt.Caller.Key())
	encodeCall(h, xt.Call)
	copy(id[:], h.Sum(nil))
	return
}

//Hash the block's number and the hashes of all its extrinsics
func (b *Block) Hash() (id Hash) {
	h := newHasher()
	binary.Write(h, binary.BigEndian, uint32(b.Header.Number))
	binary.Write(h, binary.BigEndian, uint32(len(b.Extrinsics)))
	for _, xt := range b.Extrinsics {
		var xh Hash
		if xt != nil {
			xh = xt.Hash()
		}

		h.Write(xh[:])
	}

	copy(id[:], h.Sum(nil))
	return
}

func newHasher() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("runtime: failed to setup blake2b: " + err.Error()) //only fails for oversized keys
	}

	return h
}

func writeBytes(h hash.Hash, b []byte) {
	binary.Write(h, binary.BigEndian, uint32(len(b)))
	h.Write(b)
}

//call encoding tags, a pallet byte followed by a call byte
const (
	tagSystem   = 0x00
	tagBalances = 0x01
	tagUnknown  = 0xff

	tagRemark   = 0x00
	tagTransfer = 0x00
)

func encodeCall(h hash.Hash, call Call) {
	switch c := call.(type) {
	case SystemCall:
		switch sc := c.Call.(type) {
		case system.Remark:
			h.Write([]byte{tagSystem, tagRemark})
			writeBytes(h, sc.Data)
			return
		}
	case BalancesCall:
		switch bc := c.Call.(type) {
		case balances.Transfer[AccountID, Balance]:
			h.Write([]byte{tagBalances, tagTransfer})
			writeBytes(h, bc.To.Key())
			writeBytes(h, []byte(bc.Amount.String()))
			return
		}
	}

	h.Write([]byte{tagUnknown})
}
