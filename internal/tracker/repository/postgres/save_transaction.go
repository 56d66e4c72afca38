package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
	"github.com/jackc/pgx/v5"
)

const (
	// An existing confirmation is never cleared by saving the transaction again.
	upsertTransactionQuery = `
INSERT INTO transactions (txn_txid, txn_raw, block_id)
VALUES ($1, $2, $3)
ON CONFLICT (txn_txid) DO UPDATE SET
    txn_raw = COALESCE(transactions.txn_raw, EXCLUDED.txn_raw),
    block_id = COALESCE(transactions.block_id, EXCLUDED.block_id)
RETURNING txn_id`

	insertOutputQuery = `
INSERT INTO outputs (txn_id, addr_id, out_index, out_amount)
VALUES ($1, $2, $3, $4)
ON CONFLICT (txn_id, out_index) DO NOTHING`

	insertInputQuery = `
INSERT INTO inputs (txn_id, out_id, in_index)
VALUES ($1, $2, $3)
ON CONFLICT (txn_id, in_index) DO NOTHING`

	// Resolves spends of outputs saved earlier in the same pass.
	insertInputByOutpointQuery = `
INSERT INTO inputs (txn_id, out_id, in_index)
SELECT $1, o.out_id, $2
FROM outputs o
JOIN transactions t ON t.txn_id = o.txn_id
WHERE t.txn_txid = $3 AND o.out_index = $4
ON CONFLICT (txn_id, in_index) DO NOTHING`
)

// SaveTransaction stores a relevant transaction with its matched outputs and inputs in
// one database transaction. Saving the same transaction again is a no-op.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.TrackedTransaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_transaction", err, start)
	}()

	rows, err := transactionRows(tx)
	if err != nil {
		return fmt.Errorf("save transaction %s: %w", tx.TxID, err)
	}

	err = pgx.BeginFunc(ctx, r.db, func(dbTx pgx.Tx) error {
		var txnID int64
		if err := dbTx.QueryRow(ctx, upsertTransactionQuery, tx.TxID, tx.Raw, tx.BlockID).Scan(&txnID); err != nil {
			return fmt.Errorf("upsert transaction: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(row.query, append([]any{txnID}, row.args...)...)
		}
		if err := dbTx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert outputs and inputs: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save transaction %s: %w", tx.TxID, err)
	}
	return nil
}

// childRow is an output or input insert; the transaction id is prepended once known.
type childRow struct {
	query string
	args  []any
}

func transactionRows(tx model.TrackedTransaction) ([]childRow, error) {
	rows := make([]childRow, 0, len(tx.Outputs)+len(tx.Inputs))
	for _, out := range tx.Outputs {
		index, err := safe.Int32(out.Index)
		if err != nil {
			return nil, fmt.Errorf("output index: %w", err)
		}
		rows = append(rows, childRow{insertOutputQuery, []any{out.AddressID, index, out.Value}})
	}
	for _, in := range tx.Inputs {
		index, err := safe.Int32(in.Index)
		if err != nil {
			return nil, fmt.Errorf("input index: %w", err)
		}
		if in.OutputID != 0 {
			rows = append(rows, childRow{insertInputQuery, []any{in.OutputID, index}})
			continue
		}
		prevIndex, err := safe.Int32(in.PrevOut.Index)
		if err != nil {
			return nil, fmt.Errorf("spent output index: %w", err)
		}
		rows = append(rows, childRow{insertInputByOutpointQuery, []any{index, in.PrevOut.TxID, prevIndex}})
	}
	return rows, nil
}
