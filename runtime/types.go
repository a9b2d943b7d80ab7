// Package runtime composes the pallets into a single state machine. It owns
// one instance of every pallet, routes calls to the pallet they belong to and
// executes blocks of extrinsics in order.
package runtime

import "github.com/advanderveer/pallets/support"

//The concrete types this runtime binds its pallets to
type (
	AccountID   = support.Name
	Balance     = support.U128
	BlockNumber = support.U32
	Nonce       = support.U32
)
