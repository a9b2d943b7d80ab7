package balances

import "errors"

var (
	//ErrInsufficientBalance is returned when the caller cannot cover a transfer
	ErrInsufficientBalance = errors.New("insufficient balance for transfer")

	//ErrBalanceOverflow is returned when the recipient's balance would overflow
	ErrBalanceOverflow = errors.New("balance overflow for recipient")

	//ErrIssuanceOverflow is returned when the sum of all balances doesn't fit the balance type
	ErrIssuanceOverflow = errors.New("total issuance overflows")
)
