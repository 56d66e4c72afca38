package model

import "time"

// JournalKind classifies block rows of the journal.
type JournalKind string

const (
	JournalBlock  JournalKind = "block"
	JournalHeader JournalKind = "header"
	JournalRewind JournalKind = "rewind"
)

// BlockRecord is a journal row describing a processed block, a header stored during
// initial sync, or a rewind to Height.
type BlockRecord struct {
	Kind     JournalKind
	Height   uint64
	Hash     string
	TxCount  int
	Relevant int
	Duration time.Duration
}

// TxRecord is a journal row describing a relevant transaction. BlockHeight is nil for
// mempool transactions.
type TxRecord struct {
	TxID        string
	Topic       Topic
	BlockHeight *uint64
	Outputs     int
	Inputs      int
}

// NewTxRecord summarizes tx for the journal.
func NewTxRecord(tx *Transaction, blockHeight *uint64) TxRecord {
	return TxRecord{
		TxID:        tx.TxID,
		Topic:       tx.Topic,
		BlockHeight: blockHeight,
		Outputs:     len(tx.MatchedOutputs()),
		Inputs:      len(tx.MatchedInputs()),
	}
}
