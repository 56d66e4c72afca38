package postgres

import (
	"context"
	"fmt"
	"time"
)

const getUnconfirmedTransactionsQuery = `
SELECT txn_txid
FROM transactions
WHERE block_id IS NULL
ORDER BY txn_id`

// GetUnconfirmedTransactions returns every txid not attached to a block.
func (r *Repository) GetUnconfirmedTransactions(ctx context.Context) (txids []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_unconfirmed_transactions", err, start)
	}()

	rows, err := r.db.Query(ctx, getUnconfirmedTransactionsQuery)
	if err != nil {
		return nil, fmt.Errorf("query unconfirmed transactions: %w", err)
	}
	return collectTxIDs(rows)
}
