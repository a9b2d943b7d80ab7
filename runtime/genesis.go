package runtime

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//Genesis describes the state a runtime starts out with
type Genesis struct {
	Balances []*GenesisBalance `yaml:"balances"`
}

//GenesisBalance is an account's starting balance
type GenesisBalance struct {
	Account AccountID `yaml:"account"`
	Balance Balance   `yaml:"balance"`
}

//Validate checks that every account is named and listed once
func (g *Genesis) Validate() error {
	seen := make(map[AccountID]struct{}, len(g.Balances))
	for i, gb := range g.Balances {
		if gb == nil || gb.Account == "" {
			return errors.Wrapf(ErrGenesisEmptyAccount, "balance entry %d", i)
		}

		if _, ok := seen[gb.Account]; ok {
			return errors.Wrapf(ErrGenesisDuplicateAccount, "account '%s'", gb.Account)
		}

		seen[gb.Account] = struct{}{}
	}

	return nil
}

//ParseGenesis decodes a YAML genesis description, for example:
//
//	balances:
//	  - account: alice
//	    balance: 100
func ParseGenesis(data []byte) (g *Genesis, err error) {
	g = &Genesis{}
	if err = yaml.Unmarshal(data, g); err != nil {
		return nil, errors.Wrap(err, "failed to decode genesis")
	}

	if err = g.Validate(); err != nil {
		return nil, err
	}

	return
}

//LoadGenesis reads and decodes a YAML genesis file
func LoadGenesis(path string) (g *Genesis, err error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read genesis file")
	}

	return ParseGenesis(data)
}
