package runtime

import (
	"log"

	"github.com/advanderveer/pallets/balances"
	"github.com/advanderveer/pallets/support"
	"github.com/advanderveer/pallets/system"
	"github.com/pkg/errors"
)

//Phase of block execution
type Phase int

const (
	//Idle means no block is being executed
	Idle Phase = iota

	//Validating means the block's header is being checked
	Validating

	//Executing means the block's extrinsics are being applied
	Executing

	//Done means the last block was accepted and all its extrinsics attempted
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Executing:
		return "executing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

//Runtime owns the state of every pallet and is the only path through which
//calls reach that state. It is not safe for concurrent use, blocks must be
//executed one after the other.
type Runtime struct {
	logs    *log.Logger
	metrics *metrics
	phase   Phase

	system   *system.Pallet[AccountID, BlockNumber, Nonce]
	balances *balances.Pallet[AccountID, Balance]
}

//New creates a runtime with all pallet state empty, except for what the
//configured genesis puts in it.
func New(conf *Conf) (rt *Runtime, err error) {
	if conf == nil {
		conf = DefaultConf()
	}

	rt = &Runtime{
		logs:     conf.Logger(),
		system:   system.New[AccountID, BlockNumber, Nonce](conf),
		balances: balances.New[AccountID, Balance](conf),
	}

	rt.metrics, err = newMetrics(conf.Metrics)
	if err != nil {
		return nil, err
	}

	if conf.Genesis != nil {
		if err = conf.Genesis.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid genesis")
		}

		for _, gb := range conf.Genesis.Balances {
			rt.balances.SetBalance(gb.Account, gb.Balance)
		}

		rt.logs.Printf("[INFO] applied genesis with %d balances", len(conf.Genesis.Balances))
	}

	return
}

//System returns the system pallet for direct reads and writes
func (rt *Runtime) System() *system.Pallet[AccountID, BlockNumber, Nonce] { return rt.system }

//Balances returns the balances pallet for direct reads and writes
func (rt *Runtime) Balances() *balances.Pallet[AccountID, Balance] { return rt.balances }

//Phase returns where the runtime is in executing blocks
func (rt *Runtime) Phase() Phase { return rt.phase }

//Dispatch routes the call to the pallet it belongs to. Any pallet error is
//returned as a *DispatchError.
func (rt *Runtime) Dispatch(caller AccountID, call Call) (err error) {
	switch c := call.(type) {
	case SystemCall:
		err = rt.system.Dispatch(caller, c.Call)
	case BalancesCall:
		err = rt.balances.Dispatch(caller, c.Call)
	default:
		return &DispatchError{Err: support.ErrUnknownCall}
	}

	if err != nil {
		return &DispatchError{Pallet: call.Pallet(), Err: err}
	}

	return nil
}

//ExecuteBlock validates the block's number and, if it directly follows the
//current block number, applies each extrinsic in order. A block with the wrong
//number is rejected as a whole and changes nothing. Extrinsics that fail are
//recorded in the receipt but don't stop the block: the caller's nonce is
//always consumed and later extrinsics still run.
func (rt *Runtime) ExecuteBlock(b *Block) (rcpt *Receipt, err error) {
	if b == nil {
		return nil, ErrNilBlock
	}

	rt.phase = Validating
	expected := rt.system.BlockNumber().Inc()
	if b.Header.Number.Cmp(expected) != 0 {
		rt.phase = Idle
		rt.metrics.blocks.WithLabelValues("rejected").Inc()
		rt.logs.Printf("[ERRO] rejected block %s with number %s, expected %s", b.Hash(), b.Header.Number, expected)
		return nil, errors.Wrapf(ErrBlockNumberMismatch, "block has number %s, expected %s", b.Header.Number, expected)
	}

	rt.phase = Executing
	rt.system.IncBlockNumber()

	rcpt = &Receipt{Number: b.Header.Number, Hash: b.Hash()}
	for i, xt := range b.Extrinsics {
		rcpt.Results = append(rcpt.Results, rt.apply(i, xt))
	}

	rt.phase = Done
	rt.metrics.blocks.WithLabelValues("accepted").Inc()
	rt.metrics.blockNumber.Set(float64(rt.system.BlockNumber()))
	rt.logs.Printf("[INFO] accepted block %s with number %s, %d/%d extrinsics failed",
		rcpt.Hash, rcpt.Number, rcpt.Failed(), len(rcpt.Results))

	return rcpt, nil
}

//apply a single extrinsic, the nonce is incremented before the call runs
func (rt *Runtime) apply(i int, xt *Extrinsic) (res *Result) {
	if xt == nil {
		rt.metrics.extrinsics.WithLabelValues("", outcome(ErrNilExtrinsic)).Inc()
		rt.logs.Printf("[ERRO] extrinsic %d is nil, skipping", i)
		return &Result{Index: i, Err: ErrNilExtrinsic}
	}

	res = &Result{Index: i, Hash: xt.Hash(), Caller: xt.Caller}
	rt.system.IncNonce(xt.Caller)
	res.Err = rt.Dispatch(xt.Caller, xt.Call)

	var pallet string
	if xt.Call != nil {
		pallet = xt.Call.Pallet()
	}

	rt.metrics.extrinsics.WithLabelValues(pallet, outcome(res.Err)).Inc()
	if res.Err != nil {
		rt.logs.Printf("[ERRO] extrinsic %d (%s) from %s failed: %v", i, res.Hash, xt.Caller, res.Err)
	}

	return
}

//Replay executes the blocks in order, it stops at the first block that is
//rejected and returns the receipts of the blocks accepted until then.
func (rt *Runtime) Replay(blocks []*Block) (rcpts []*Receipt, err error) {
	var rcpt *Receipt
	for i, b := range blocks {
		rcpt, err = rt.ExecuteBlock(b)
		if err != nil {
			return rcpts, errors.Wrapf(err, "failed to replay block at index %d", i)
		}

		rcpts = append(rcpts, rcpt)
	}

	return
}
