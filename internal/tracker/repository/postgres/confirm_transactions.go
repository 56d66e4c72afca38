package postgres

import (
	"context"
	"fmt"
	"time"
)

const (
	confirmTransactionsQuery   = `UPDATE transactions SET block_id = $1 WHERE txn_txid = ANY($2)`
	unconfirmTransactionsQuery = `UPDATE transactions SET block_id = NULL WHERE txn_txid = ANY($1)`
)

// ConfirmTransactions attaches the stored txids to blockID. Unknown txids are ignored.
func (r *Repository) ConfirmTransactions(ctx context.Context, txids []string, blockID int64) (err error) {
	if len(txids) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("confirm_transactions", err, start)
	}()

	if _, err = r.db.Exec(ctx, confirmTransactionsQuery, blockID, txids); err != nil {
		return fmt.Errorf("confirm %d transactions in block %d: %w", len(txids), blockID, err)
	}
	return nil
}

// UnconfirmTransactions detaches the txids from their block.
func (r *Repository) UnconfirmTransactions(ctx context.Context, txids []string) (err error) {
	if len(txids) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("unconfirm_transactions", err, start)
	}()

	if _, err = r.db.Exec(ctx, unconfirmTransactionsQuery, txids); err != nil {
		return fmt.Errorf("unconfirm %d transactions: %w", len(txids), err)
	}
	return nil
}
