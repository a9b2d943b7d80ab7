package runtime

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type blockFile struct {
	Blocks []blockSpec `yaml:"blocks"`
}

type blockSpec struct {
	Number     BlockNumber     `yaml:"number"`
	Extrinsics []extrinsicSpec `yaml:"extrinsics"`
}

type extrinsicSpec struct {
	Caller   AccountID     `yaml:"caller"`
	Transfer *transferSpec `yaml:"transfer"`
	Remark   *string       `yaml:"remark"`
}

type transferSpec struct {
	To     AccountID `yaml:"to"`
	Amount Balance   `yaml:"amount"`
}

func (xs extrinsicSpec) call() (Call, error) {
	switch {
	case xs.Transfer != nil && xs.Remark == nil:
		return Transfer(xs.Transfer.To, xs.Transfer.Amount), nil
	case xs.Remark != nil && xs.Transfer == nil:
		return Remark([]byte(*xs.Remark)), nil
	default:
		return nil, ErrInvalidExtrinsic
	}
}

//ParseBlocks decodes a YAML list of blocks, for example:
//
//	blocks:
//	  - number: 1
//	    extrinsics:
//	      - caller: alice
//	        transfer: {to: bob, amount: 30}
//	      - caller: bob
//	        remark: hello
func ParseBlocks(data []byte) (blocks []*Block, err error) {
	var bf blockFile
	if err = yaml.Unmarshal(data, &bf); err != nil {
		return nil, errors.Wrap(err, "failed to decode blocks")
	}

	for i, bs := range bf.Blocks {
		if bs.Number.IsZero() {
			return nil, errors.Wrapf(ErrInvalidBlockNumber, "block at index %d", i)
		}

		b := &Block{Header: Header{Number: bs.Number}}
		for j, xs := range bs.Extrinsics {
			call, err := xs.call()
			if err != nil {
				return nil, errors.Wrapf(err, "block %s, extrinsic %d", bs.Number, j)
			}

			b.Extrinsics = append(b.Extrinsics, &Extrinsic{Caller: xs.Caller, Call: call})
		}

		blocks = append(blocks, b)
	}

	return
}

//LoadBlocks reads and decodes a YAML block file
func LoadBlocks(path string) (blocks []*Block, err error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read blocks file")
	}

	return ParseBlocks(data)
}
