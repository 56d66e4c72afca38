package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

const getTransactionsConfirmedAfterHeightQuery = `
SELECT t.txn_txid
FROM transactions t
JOIN blocks b ON b.block_id = t.block_id
WHERE b.block_height > $1
ORDER BY t.txn_id`

// GetTransactionsConfirmedAfterHeight returns txids confirmed in blocks above height.
func (r *Repository) GetTransactionsConfirmedAfterHeight(ctx context.Context, height uint64) (txids []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_transactions_confirmed_after_height", err, start)
	}()

	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("height %d: %w", height, err)
	}
	rows, err := r.db.Query(ctx, getTransactionsConfirmedAfterHeightQuery, h)
	if err != nil {
		return nil, fmt.Errorf("query transactions confirmed after %d: %w", height, err)
	}
	return collectTxIDs(rows)
}
