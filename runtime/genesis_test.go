package runtime_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/advanderveer/pallets/runtime"
	"github.com/advanderveer/pallets/support"
	"github.com/advanderveer/go-test"
	"github.com/pkg/errors"
)

func TestGenesisParsing(t *testing.T) {
	g, err := runtime.ParseGenesis([]byte(`
balances:
  - account: alice
    balance: 100
  - account: bob
    balance: "340282366920938463463374607431768211455"
`))
	test.Ok(t, err)
	test.Equals(t, 2, len(g.Balances))
	test.Equals(t, runtime.AccountID("alice"), g.Balances[0].Account)
	test.Equals(t, "100", g.Balances[0].Balance.String())
	test.Equals(t, 0, g.Balances[1].Balance.Cmp(support.MaxU128()))

	t.Run("duplicate account", func(t *testing.T) {
		_, err := runtime.ParseGenesis([]byte(`
balances:
  - {account: alice, balance: 1}
  - {account: alice, balance: 2}
`))
		test.Equals(t, runtime.ErrGenesisDuplicateAccount, errors.Cause(err))
	})

	t.Run("empty account", func(t *testing.T) {
		_, err := runtime.ParseGenesis([]byte(`balances: [{balance: 1}]`))
		test.Equals(t, runtime.ErrGenesisEmptyAccount, errors.Cause(err))
	})

	t.Run("balance out of range", func(t *testing.T) {
		_, err := runtime.ParseGenesis([]byte(`balances: [{account: alice, balance: -1}]`))
		test.Assert(t, err != nil, "should reject negative balances")
	})
}

func TestGenesisFromConf(t *testing.T) {
	dir, err := ioutil.TempDir("", "pallets_")
	test.Ok(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "genesis.yaml")
	test.Ok(t, ioutil.WriteFile(path, []byte("balances:\n  - {account: alice, balance: 100}\n"), 0600))

	conf := runtime.DefaultConf()
	conf.Genesis, err = runtime.LoadGenesis(path)
	test.Ok(t, err)

	rt, err := runtime.New(conf)
	test.Ok(t, err)
	test.Equals(t, "100", rt.Balances().Balance("alice").String())
	test.Equals(t, runtime.BlockNumber(0), rt.System().BlockNumber())

	_, err = runtime.LoadGenesis(filepath.Join(dir, "missing.yaml"))
	test.Assert(t, err != nil, "should fail to read a missing file")

	conf.Genesis = &runtime.Genesis{Balances: []*runtime.GenesisBalance{
		{Account: "bob", Balance: support.NewU128(1)},
		{Account: "bob", Balance: support.NewU128(2)},
	}}
	_, err = runtime.New(conf)
	test.Equals(t, runtime.ErrGenesisDuplicateAccount, errors.Cause(err))
}

func TestBlockFile(t *testing.T) {
	blocks, err := runtime.ParseBlocks([]byte(`
blocks:
  - number: 1
    extrinsics:
      - caller: alice
        transfer: {to: bob, amount: 30}
      - caller: alice
        transfer: {to: charlie, amount: 20}
  - number: 2
    extrinsics:
      - caller: bob
        remark: hello
`))
	test.Ok(t, err)
	test.Equals(t, 2, len(blocks))
	test.Equals(t, runtime.BlockNumber(1), blocks[0].Header.Number)
	test.Equals(t, 2, len(blocks[0].Extrinsics))
	test.Equals(t, runtime.Transfer("charlie", support.NewU128(20)).Pallet(), blocks[0].Extrinsics[1].Call.Pallet())
	test.Equals(t, runtime.Remark([]byte("hello")), blocks[1].Extrinsics[0].Call)

	rt, err := runtime.New(&runtime.Conf{Genesis: &runtime.Genesis{Balances: []*runtime.GenesisBalance{
		{Account: "alice", Balance: support.NewU128(100)},
	}}})
	test.Ok(t, err)

	_, err = rt.Replay(blocks)
	test.Ok(t, err)
	test.Equals(t, "50", rt.Balances().Balance("alice").String())
	test.Equals(t, "30", rt.Balances().Balance("bob").String())
	test.Equals(t, "20", rt.Balances().Balance("charlie").String())
	test.Equals(t, runtime.Nonce(2), rt.System().Nonce("alice"))
	test.Equals(t, runtime.Nonce(1), rt.System().Nonce("bob"))

	t.Run("invalid extrinsic", func(t *testing.T) {
		_, err := runtime.ParseBlocks([]byte(`
blocks:
  - number: 1
    extrinsics:
      - caller: alice
`))
		test.Equals(t, runtime.ErrInvalidExtrinsic, errors.Cause(err))

		_, err = runtime.ParseBlocks([]byte(`
blocks:
  - number: 1
    extrinsics:
      - caller: alice
        remark: x
        transfer: {to: bob, amount: 1}
`))
		test.Equals(t, runtime.ErrInvalidExtrinsic, errors.Cause(err))
	})

	t.Run("missing number", func(t *testing.T) {
		_, err := runtime.ParseBlocks([]byte(`blocks: [{extrinsics: []}]`))
		test.Equals(t, runtime.ErrInvalidBlockNumber, errors.Cause(err))
	})
}
