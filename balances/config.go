// Package balances implements the balances pallet: a ledger that maps each
// account to its balance and moves funds between accounts using checked
// arithmetic.
package balances

import "github.com/advanderveer/pallets/system"

//Config is what the balances pallet needs from its hosting runtime. It builds
//on the system pallet's config so one runtime binding serves both.
type Config interface {
	system.Config
}
