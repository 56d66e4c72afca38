package model

import (
	"fmt"
	"sync"
)

// Topic marks the path a transaction arrived through. It is used for fan-out and
// journaling only and is never persisted with the transaction.
type Topic string

var (
	TopicBlock   Topic = "block"
	TopicMempool Topic = "mempool"
)

// Outpoint references an output of a previous transaction.
type Outpoint struct {
	TxID  string
	Index uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}

// Output is a decoded transaction output.
type Output struct {
	Index  uint32
	Value  int64
	Script []byte
	Match  ScriptMatch
}

// Input is a decoded transaction input. Coinbase inputs carry no usable PrevOut.
type Input struct {
	Index    uint32
	PrevOut  Outpoint
	Sequence uint32
	Coinbase bool
}

// Transaction wraps a decoded transaction together with the tracked outputs and inputs
// matched during relevance filtering.
type Transaction struct {
	TxID    string
	Raw     []byte
	Inputs  []Input
	Outputs []Output
	Topic   Topic

	mu             sync.Mutex
	matchedOutputs map[uint32]TrackedAddress
	matchedInputs  map[uint32]TrackedOutput
}

// MatchOutput tags output index as paying to a tracked address.
func (t *Transaction) MatchOutput(index uint32, addr TrackedAddress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.matchedOutputs == nil {
		t.matchedOutputs = make(map[uint32]TrackedAddress)
	}
	t.matchedOutputs[index] = addr
}

// MatchInput tags input index as spending a tracked output.
func (t *Transaction) MatchInput(index uint32, out TrackedOutput) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.matchedInputs == nil {
		t.matchedInputs = make(map[uint32]TrackedOutput)
	}
	t.matchedInputs[index] = out
}

// MatchedOutputs returns a copy of the matched outputs keyed by output index.
func (t *Transaction) MatchedOutputs() map[uint32]TrackedAddress {
	t.mu.Lock()
	defer t.mu.Unlock()
	res := make(map[uint32]TrackedAddress, len(t.matchedOutputs))
	for k, v := range t.matchedOutputs {
		res[k] = v
	}
	return res
}

// MatchedInputs returns a copy of the matched inputs keyed by input index.
func (t *Transaction) MatchedInputs() map[uint32]TrackedOutput {
	t.mu.Lock()
	defer t.mu.Unlock()
	res := make(map[uint32]TrackedOutput, len(t.matchedInputs))
	for k, v := range t.matchedInputs {
		res[k] = v
	}
	return res
}

// Matched reports whether any output or input was tagged.
func (t *Transaction) Matched() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.matchedOutputs) > 0 || len(t.matchedInputs) > 0
}

// Tracked builds the store record of the transaction. blockID is nil for mempool
// transactions.
func (t *Transaction) Tracked(blockID *int64) TrackedTransaction {
	res := TrackedTransaction{TxID: t.TxID, Raw: t.Raw, BlockID: blockID}

	outs := t.MatchedOutputs()
	for _, out := range t.Outputs {
		addr, ok := outs[out.Index]
		if !ok {
			continue
		}
		res.Outputs = append(res.Outputs, TrackedTxOutput{
			Index:     out.Index,
			Value:     out.Value,
			AddressID: addr.AddressID,
		})
	}

	ins := t.MatchedInputs()
	for _, in := range t.Inputs {
		spent, ok := ins[in.Index]
		if !ok {
			continue
		}
		res.Inputs = append(res.Inputs, TrackedTxInput{
			Index:    in.Index,
			OutputID: spent.OutputID,
			PrevOut:  in.PrevOut,
		})
	}
	return res
}
