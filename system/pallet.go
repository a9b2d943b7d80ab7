package system

import (
	"log"

	"github.com/advanderveer/pallets/support"
	"github.com/advanderveer/pallets/support/storage"
)

//Pallet keeps track of the current block number and how many extrinsics each
//account has issued.
type Pallet[A support.AccountID, B support.Counter[B], N support.Counter[N]] struct {
	logs        *log.Logger
	blockNumber B
	nonces      *storage.Map[A, N]
}

//New creates a system pallet at block zero with no nonces
func New[A support.AccountID, B support.Counter[B], N support.Counter[N]](cfg Config) *Pallet[A, B, N] {
	return &Pallet[A, B, N]{
		logs:   cfg.Logger(),
		nonces: storage.NewMap[A, N](),
	}
}

//BlockNumber returns the current block number
func (p *Pallet[A, B, N]) BlockNumber() B { return p.blockNumber }

//IncBlockNumber increases the block number by one
func (p *Pallet[A, B, N]) IncBlockNumber() {
	p.blockNumber = p.blockNumber.Inc()
}

//Nonce returns the nonce of 'who', zero if it never issued anything
func (p *Pallet[A, B, N]) Nonce(who A) (n N) {
	n, _ = p.nonces.Get(who)
	return
}

//IncNonce increases the nonce of 'who' by one
func (p *Pallet[A, B, N]) IncNonce(who A) {
	p.nonces.Insert(who, p.Nonce(who).Inc())
}

//EachNonce calls f for every account with a stored nonce, in account order
func (p *Pallet[A, B, N]) EachNonce(f func(who A, n N) error) error {
	return p.nonces.Each(f)
}

//Dispatch executes a system call on behalf of 'caller'
func (p *Pallet[A, B, N]) Dispatch(caller A, call Call) error {
	switch c := call.(type) {
	case Remark:
		p.logs.Printf("[INFO] remark from %s (%d bytes)", caller, len(c.Data))
		return nil
	default:
		return support.ErrUnknownCall
	}
}
