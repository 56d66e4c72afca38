package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
	"github.com/jackc/pgx/v5"
)

const getHighestBlockQuery = `
SELECT block_id, block_height
FROM blocks
ORDER BY block_height DESC, block_id DESC
LIMIT 1`

// GetHighestBlock returns the highest stored block, or an empty HighestBlock when there
// are none.
func (r *Repository) GetHighestBlock(ctx context.Context) (res model.HighestBlock, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_highest_block", err, start)
	}()

	var height int64
	err = r.db.QueryRow(ctx, getHighestBlockQuery).Scan(&res.ID, &height)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.HighestBlock{}, nil
	}
	if err != nil {
		return model.HighestBlock{}, fmt.Errorf("query highest block: %w", err)
	}
	if res.Height, err = safe.Uint64(height); err != nil {
		return model.HighestBlock{}, fmt.Errorf("highest block height: %w", err)
	}
	return res, nil
}
