package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

const getOutputSpendsQuery = `
SELECT o.out_id, t.txn_txid, o.out_index, a.addr_address
FROM unnest($1::text[], $2::int[]) AS q(txid, idx)
JOIN transactions t ON t.txn_txid = q.txid
JOIN outputs o ON o.txn_id = t.txn_id AND o.out_index = q.idx
JOIN addresses a ON a.addr_id = o.addr_id`

// GetOutputSpends returns the stored outputs among outpoints.
func (r *Repository) GetOutputSpends(ctx context.Context, outpoints []model.Outpoint) (res []model.TrackedOutput, err error) {
	if len(outpoints) == 0 {
		return nil, nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_output_spends", err, start)
	}()

	txids := make([]string, len(outpoints))
	indexes := make([]int32, len(outpoints))
	for i, op := range outpoints {
		txids[i] = op.TxID
		if indexes[i], err = safe.Int32(op.Index); err != nil {
			return nil, fmt.Errorf("outpoint %s: %w", op, err)
		}
	}

	rows, err := r.db.Query(ctx, getOutputSpendsQuery, txids, indexes)
	if err != nil {
		return nil, fmt.Errorf("query output spends: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			out   model.TrackedOutput
			index int32
		)
		if err = rows.Scan(&out.OutputID, &out.Outpoint.TxID, &index, &out.Address); err != nil {
			return nil, fmt.Errorf("scan output spend: %w", err)
		}
		if out.Outpoint.Index, err = safe.Uint32(index); err != nil {
			return nil, fmt.Errorf("output spend index: %w", err)
		}
		res = append(res, out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate output spends: %w", err)
	}
	return res, nil
}
