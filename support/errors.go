package support

import "errors"

var (
	//ErrUnknownCall is returned when a pallet is asked to dispatch a call it doesn't own
	ErrUnknownCall = errors.New("unknown call")

	//ErrInvalidNumber is returned when a numeric value cannot be parsed into its type
	ErrInvalidNumber = errors.New("invalid number")

	//ErrInvalidAccount is returned when an account identifier cannot be parsed
	ErrInvalidAccount = errors.New("invalid account identifier")
)
