package model

// TrackedAddress is an address owned by a tracked wallet entity. HD fields are set only
// when the address was derived from an extended public key.
type TrackedAddress struct {
	AddressID   int64
	Address     string
	HDAccountID *int64
	XPub        string
	Chain       uint32
	ChildIndex  uint32
}

// TrackedOutput is a stored output paying to a tracked address. OutputID is zero for
// outputs matched inside the same bundle before they reach the store.
type TrackedOutput struct {
	OutputID int64
	Outpoint Outpoint
	Address  string
}

// TrackedTransaction is the store record of a relevant transaction.
type TrackedTransaction struct {
	TxID    string
	Raw     []byte
	BlockID *int64
	Outputs []TrackedTxOutput
	Inputs  []TrackedTxInput
}

// TrackedTxOutput is a matched output of a TrackedTransaction.
type TrackedTxOutput struct {
	Index     uint32
	Value     int64
	AddressID int64
}

// TrackedTxInput is a matched input of a TrackedTransaction. OutputID is zero when the
// spent output is saved in the same pass, and the store resolves it through PrevOut.
type TrackedTxInput struct {
	Index    uint32
	OutputID int64
	PrevOut  Outpoint
}

// TxStatus is the node's answer about a previously seen transaction.
type TxStatus struct {
	TxID string
	// Found is false when the node no longer knows the transaction.
	Found bool
	// BlockHash is empty while the transaction is unconfirmed.
	BlockHash string
}
