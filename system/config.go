// Package system implements the system pallet: the block number and the
// per-account nonces that every other pallet can rely on.
package system

import "log"

//Config is what the system pallet needs from the runtime that hosts it, next
//to the account, block number and nonce types it is instantiated with.
type Config interface {
	//Logger receives the pallet's log lines
	Logger() *log.Logger
}
