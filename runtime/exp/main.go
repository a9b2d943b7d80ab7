package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/advanderveer/pallets/runtime"
)

func main() {
	genesisPath := flag.String("genesis", "", "yaml file with the starting balances")
	blocksPath := flag.String("blocks", "", "yaml file with the blocks to execute")
	flag.Parse()

	conf := runtime.DefaultConf()
	conf.LogWriter = os.Stderr
	if *genesisPath != "" {
		g, err := runtime.LoadGenesis(*genesisPath)
		if err != nil {
			panic(err)
		}

		conf.Genesis = g
	}

	rt, err := runtime.New(conf)
	if err != nil {
		panic(err)
	}

	if *blocksPath != "" {
		blocks, err := runtime.LoadBlocks(*blocksPath)
		if err != nil {
			panic(err)
		}

		rcpts, err := rt.Replay(blocks)
		for _, rcpt := range rcpts {
			for _, res := range rcpt.Results {
				status := "ok"
				if res.Err != nil {
					status = res.Err.Error()
				}

				fmt.Printf("block %s extrinsic %d (%s) by %s: %s\n", rcpt.Number, res.Index, res.Hash, res.Caller, status)
			}
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "replay stopped: %v\n", err)
		}
	}

	fmt.Printf("block number: %s\n", rt.System().BlockNumber())
	err = rt.Balances().Each(func(who runtime.AccountID, b runtime.Balance) error {
		fmt.Printf("%s: balance=%s nonce=%s\n", who, b, rt.System().Nonce(who))
		return nil
	})
	if err != nil {
		panic(err)
	}

	total, err := rt.Balances().TotalIssuance()
	if err != nil {
		panic(err)
	}

	fmt.Printf("total issuance: %s\n", total)
}
