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

const getBlockByHashQuery = `
SELECT block_id, block_height, block_hash, block_time, block_parent
FROM blocks
WHERE block_hash = $1`

// GetBlockByHash returns the stored block with hash, or nil when it is not stored.
func (r *Repository) GetBlockByHash(ctx context.Context, hash string) (block *model.PersistedBlock, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_block_by_hash", err, start)
	}()

	var (
		res          model.PersistedBlock
		height, when int64
	)
	err = r.db.QueryRow(ctx, getBlockByHashQuery, hash).Scan(&res.ID, &height, &res.Hash, &when, &res.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query block %s: %w", hash, err)
	}
	if res.Height, err = safe.Uint64(height); err != nil {
		return nil, fmt.Errorf("block %s height: %w", hash, err)
	}
	if res.Time, err = safe.Uint32(when); err != nil {
		return nil, fmt.Errorf("block %s time: %w", hash, err)
	}
	return &res, nil
}
