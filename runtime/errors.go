package runtime

import "errors"

var (
	ErrBlockNumberMismatch     = errors.New("block number mismatch")
	ErrNilBlock                = errors.New("block is nil")
	ErrNilExtrinsic            = errors.New("extrinsic is nil")
	ErrGenesisDuplicateAccount = errors.New("account is listed more than once in genesis")
	ErrGenesisEmptyAccount     = errors.New("genesis account is empty")
	ErrInvalidExtrinsic        = errors.New("extrinsic must specify exactly one call")
	ErrInvalidBlockNumber      = errors.New("block must have a number above zero")
)
