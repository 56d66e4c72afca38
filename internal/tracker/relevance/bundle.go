package relevance

import (
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
)

// Bundle is an ordered, concurrency-safe set of transactions: the body of a block or the
// buffered mempool snapshot. A txid is held at most once.
type Bundle struct {
	mu   sync.Mutex
	txs  []*model.Transaction
	seen map[string]struct{}
}

// NewBundle creates a Bundle holding txs.
func NewBundle(txs ...*model.Transaction) *Bundle {
	b := &Bundle{}
	b.Add(txs...)
	return b
}

// Add appends transactions, ignoring nils and txids already held.
func (b *Bundle) Add(txs ...*model.Transaction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		if _, ok := b.seen[tx.TxID]; ok {
			continue
		}
		b.seen[tx.TxID] = struct{}{}
		b.txs = append(b.txs, tx)
	}
}

// Size returns the number of transactions.
func (b *Bundle) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.txs)
}

// Clear empties the bundle.
func (b *Bundle) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.txs = nil
	b.seen = nil
}

// Transactions returns a copy of the transactions in insertion order.
func (b *Bundle) Transactions() []*model.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*model.Transaction(nil), b.txs...)
}

// Swap empties the bundle and returns what it held.
func (b *Bundle) Swap() []*model.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	txs := b.txs
	b.txs = nil
	b.seen = nil
	return txs
}
