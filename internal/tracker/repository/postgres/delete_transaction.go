package postgres

import (
	"context"
	"fmt"
	"time"
)

// Outputs and inputs go with the transaction through ON DELETE CASCADE.
const deleteTransactionQuery = `DELETE FROM transactions WHERE txn_txid = $1`

// DeleteTransaction removes a stored transaction.
func (r *Repository) DeleteTransaction(ctx context.Context, txid string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_transaction", err, start)
	}()

	if _, err = r.db.Exec(ctx, deleteTransactionQuery, txid); err != nil {
		return fmt.Errorf("delete transaction %s: %w", txid, err)
	}
	return nil
}
