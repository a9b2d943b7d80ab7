package runtime

import (
	"fmt"

	"github.com/advanderveer/pallets/balances"
	"github.com/advanderveer/pallets/system"
)

//Call is one of the runtime's pallet calls. Each pallet contributes one
//variant that wraps the pallet's own call set.
type Call interface {
	Pallet() string
}

//SystemCall is a call into the system pallet
type SystemCall struct{ system.Call }

//Pallet returns "system"
func (SystemCall) Pallet() string { return "system" }

//BalancesCall is a call into the balances pallet
type BalancesCall struct{ balances.Call }

//Pallet returns "balances"
func (BalancesCall) Pallet() string { return "balances" }

//Transfer creates a call that moves 'amount' from the caller to 'to'
func Transfer(to AccountID, amount Balance) Call {
	return BalancesCall{balances.Transfer[AccountID, Balance]{To: to, Amount: amount}}
}

//Remark creates a call that only consumes the caller's nonce
func Remark(data []byte) Call {
	return SystemCall{system.Remark{Data: data}}
}

//DispatchError wraps the error of any pallet so callers deal with a single
//error type. Pallet is empty if the call couldn't be routed to a pallet.
type DispatchError struct {
	Pallet string
	Err    error
}

func (e *DispatchError) Error() string {
	if e.Pallet == "" {
		return fmt.Sprintf("failed to dispatch: %v", e.Err)
	}

	return fmt.Sprintf("failed to dispatch to %s: %v", e.Pallet, e.Err)
}

//Cause returns the pallet's error
func (e *DispatchError) Cause() error { return e.Err }

//Unwrap returns the pallet's error
func (e *DispatchError) Unwrap() error { return e.Err }
