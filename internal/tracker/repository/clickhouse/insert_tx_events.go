package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

const txEventsTable = "tracker_tx_events"

func insertTxEventsQuery() string {
	return `
INSERT INTO ` + txEventsTable + ` (
	network,
	txid,
	topic,
	block_height,
	outputs,
	inputs,
	recorded_at
) VALUES`
}

// insertTxEvents writes one batch of transaction records. Mempool records have a NULL
// block height.
func (j *Journal) insertTxEvents(ctx context.Context, rows []txRow) (err error) {
	start := time.Now()
	defer func() {
		j.metrics.Observe("insert_tx_events", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := j.conn.PrepareBatch(ctx, insertTxEventsQuery())
	if err != nil {
		return fmt.Errorf("prepare tx events batch: %w", err)
	}

	for _, row := range rows {
		rec := row.record
		var outputs, inputs uint32
		if outputs, err = safe.Uint32(rec.Outputs); err != nil {
			return fmt.Errorf("tx event %s outputs: %w", rec.TxID, err)
		}
		if inputs, err = safe.Uint32(rec.Inputs); err != nil {
			return fmt.Errorf("tx event %s inputs: %w", rec.TxID, err)
		}
		if err = batch.Append(
			string(j.network),
			rec.TxID,
			string(rec.Topic),
			rec.BlockHeight,
			outputs,
			inputs,
			row.recordedAt,
		); err != nil {
			return fmt.Errorf("append tx event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert tx events: %w", err)
	}
	return nil
}
