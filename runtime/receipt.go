package runtime

//Result is the outcome of applying a single extrinsic
type Result struct {
	Index  int
	Hash   Hash
	Caller AccountID
	Err    error
}

//Receipt lists the outcome of every extrinsic in an accepted block, in block order
type Receipt struct {
	Number  BlockNumber
	Hash    Hash
	Results []*Result
}

//Failed returns how many extrinsics in the block failed
func (r *Receipt) Failed() (n int) {
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}

	return
}
