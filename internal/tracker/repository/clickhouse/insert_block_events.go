package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

const blockEventsTable = "tracker_block_events"

func insertBlockEventsQuery() string {
	return `
INSERT INTO ` + blockEventsTable + ` (
	network,
	kind,
	height,
	hash,
	tx_count,
	relevant,
	duration_ms,
	recorded_at
) VALUES`
}

// insertBlockEvents writes one batch of block records.
func (j *Journal) insertBlockEvents(ctx context.Context, rows []blockRow) (err error) {
	start := time.Now()
	defer func() {
		j.metrics.Observe("insert_block_events", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := j.conn.PrepareBatch(ctx, insertBlockEventsQuery())
	if err != nil {
		return fmt.Errorf("prepare block events batch: %w", err)
	}

	for _, row := range rows {
		rec := row.record
		var txCount, relevant, durationMS uint32
		if txCount, err = safe.Uint32(rec.TxCount); err != nil {
			return fmt.Errorf("block event %d tx count: %w", rec.Height, err)
		}
		if relevant, err = safe.Uint32(rec.Relevant); err != nil {
			return fmt.Errorf("block event %d relevant: %w", rec.Height, err)
		}
		if durationMS, err = safe.Uint32(rec.Duration.Milliseconds()); err != nil {
			return fmt.Errorf("block event %d duration: %w", rec.Height, err)
		}
		if err = batch.Append(
			string(j.network),
			string(rec.Kind),
			rec.Height,
			rec.Hash,
			txCount,
			relevant,
			durationMS,
			row.recordedAt,
		); err != nil {
			return fmt.Errorf("append block event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block events: %w", err)
	}
	return nil
}
