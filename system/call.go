package system

//Call is a dispatchable operation of the system pallet
type Call interface {
	systemCall()
}

//Remark carries arbitrary data and changes no state besides the nonce the
//runtime consumes for it.
type Remark struct {
	Data []byte
}

func (Remark) systemCall() {}
