package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

const deleteBlocksAfterHeightQuery = `DELETE FROM blocks WHERE block_height > $1`

// DeleteBlocksAfterHeight removes every block above height.
func (r *Repository) DeleteBlocksAfterHeight(ctx context.Context, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_blocks_after_height", err, start)
	}()

	h, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("height %d: %w", height, err)
	}
	if _, err = r.db.Exec(ctx, deleteBlocksAfterHeightQuery, h); err != nil {
		return fmt.Errorf("delete blocks after height %d: %w", height, err)
	}
	return nil
}
