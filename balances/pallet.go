package balances

import (
	"log"

	"github.com/advanderveer/pallets/support"
	"github.com/advanderveer/pallets/support/storage"
)

//Pallet keeps track of how much balance each account has. An account that was
//never written has a zero balance, a stored zero balance is kept as is.
type Pallet[A support.AccountID, B support.Numeric[B]] struct {
	logs     *log.Logger
	balances *storage.Map[A, B]
}

//New creates an empty ledger
func New[A support.AccountID, B support.Numeric[B]](cfg Config) *Pallet[A, B] {
	return &Pallet[A, B]{
		logs:     cfg.Logger(),
		balances: storage.NewMap[A, B](),
	}
}

//SetBalance overwrites the balance of 'who'
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances.Insert(who, amount)
	p.logs.Printf("[INFO] balance of %s set to %s", who, amount)
}

//Balance returns the balance of 'who', zero if it has none stored
func (p *Pallet[A, B]) Balance(who A) (b B) {
	b, _ = p.balances.Get(who)
	return
}

//Transfer moves 'amount' from 'caller' to 'to'. Both new balances are
//computed from the balances before the transfer and only written if neither
//under- nor overflows, a failed transfer leaves the ledger untouched.
func (p *Pallet[A, B]) Transfer(caller, to A, amount B) error {
	callerBalance := p.Balance(caller)
	toBalance := p.Balance(to)

	newCallerBalance, ok := callerBalance.CheckedSub(amount)
	if !ok {
		return ErrInsufficientBalance
	}

	newToBalance, ok := toBalance.CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}

	if caller == to {
		return nil //both legs cancel out
	}

	tx := p.balances.Txn()
	tx.Insert(caller, newCallerBalance)
	tx.Insert(to, newToBalance)
	tx.Commit()
	return nil
}

//TotalIssuance returns the sum of all balances in the ledger
func (p *Pallet[A, B]) TotalIssuance() (total B, err error) {
	err = p.balances.Each(func(_ A, b B) error {
		var ok bool
		if total, ok = total.CheckedAdd(b); !ok {
			return ErrIssuanceOverflow
		}

		return nil
	})

	return
}

//Each calls f for every account with a stored balance, in account order
func (p *Pallet[A, B]) Each(f func(who A, b B) error) error {
	return p.balances.Each(f)
}

//Dispatch executes a balances call on behalf of 'caller'
func (p *Pallet[A, B]) Dispatch(caller A, call Call) error {
	switch c := call.(type) {
	case Transfer[A, B]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		return support.ErrUnknownCall
	}
}
