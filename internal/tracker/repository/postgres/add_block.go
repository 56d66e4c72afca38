package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

// Re-adding a known hash refreshes the row and returns its id.
const addBlockQuery = `
INSERT INTO blocks (block_hash, block_height, block_time, block_parent)
VALUES ($1, $2, $3, $4)
ON CONFLICT (block_hash) DO UPDATE SET
    block_height = EXCLUDED.block_height,
    block_time = EXCLUDED.block_time,
    block_parent = EXCLUDED.block_parent
RETURNING block_id`

// AddBlock stores a block row and returns its id.
func (r *Repository) AddBlock(ctx context.Context, block model.NewBlock) (id int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("add_block", err, start)
	}()

	height, err := safe.Int64(block.Height)
	if err != nil {
		return 0, fmt.Errorf("block %s height: %w", block.Hash, err)
	}
	err = r.db.QueryRow(ctx, addBlockQuery, block.Hash, height, int64(block.Time), block.ParentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert block %s: %w", block.Hash, err)
	}
	return id, nil
}
