package balances

import "github.com/advanderveer/pallets/support"

//Call is a dispatchable operation of the balances pallet
type Call interface {
	balancesCall()
}

//Transfer moves Amount from the caller to To
type Transfer[A support.AccountID, B support.Numeric[B]] struct {
	To     A
	Amount B
}

func (Transfer[A, B]) balancesCall() {}
