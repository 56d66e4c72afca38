package chainsync

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"go.uber.org/zap"
)

const backtraceLogEvery = 100

// OnBlockHash applies the block announced by hash together with any missing ancestors.
// Blocks above the deepest common ancestor are rewound first.
func (s *Service) OnBlockHash(ctx context.Context, hash string) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlockHash(err, started)
	}()

	if err = s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	known, err := s.store.GetBlockByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("lookup block %s: %w", hash, err)
	}
	if known != nil {
		s.logger.Debug("block already stored", zap.String("hash", hash), zap.Uint64("height", known.Height))
		return nil
	}

	tip, err := s.node.BlockHeader(ctx, hash)
	if err != nil {
		return fmt.Errorf("get block header %s: %w", hash, err)
	}
	headers, err := s.backtrace(ctx, tip)
	if err != nil {
		return err
	}

	deepest := headers[0]
	if deepest.Height > 0 {
		if err = s.rewindAbove(ctx, deepest.Height-1); err != nil {
			return err
		}
	}

	heights := make([]uint64, 0, len(headers))
	for _, h := range headers {
		heights = append(heights, h.Height)
	}
	if err = s.processBlockRange(ctx, heights); err != nil {
		return err
	}
	s.logger.Info("block applied",
		zap.String("hash", tip.Hash),
		zap.Uint64("height", tip.Height),
		zap.Int("blocks", len(headers)))
	return nil
}

// backtrace walks parent links from tip until a stored block or genesis and returns
// the unknown headers ordered by ascending height.
func (s *Service) backtrace(ctx context.Context, tip model.BlockHeader) ([]model.BlockHeader, error) {
	headers := []model.BlockHeader{tip}
	for {
		deepest := headers[len(headers)-1]
		if deepest.Height == 0 || deepest.PreviousHash == "" {
			break
		}
		parent, err := s.store.GetBlockByHash(ctx, deepest.PreviousHash)
		if err != nil {
			return nil, fmt.Errorf("lookup block %s: %w", deepest.PreviousHash, err)
		}
		if parent != nil {
			break
		}
		header, err := s.node.BlockHeader(ctx, deepest.PreviousHash)
		if err != nil {
			return nil, fmt.Errorf("get block header %s: %w", deepest.PreviousHash, err)
		}
		headers = append(headers, header)
		if len(headers)%backtraceLogEvery == 0 {
			s.logger.Info("backtracing", zap.Int("depth", len(headers)), zap.Uint64("height", header.Height))
		}
	}
	slices.Reverse(headers)
	return headers, nil
}

// rewindAbove rewinds the store to height when it holds blocks above it.
func (s *Service) rewindAbove(ctx context.Context, height uint64) error {
	highest, err := s.store.GetHighestBlock(ctx)
	if err != nil {
		return fmt.Errorf("get highest block: %w", err)
	}
	if highest.Empty() || highest.Height <= height {
		return nil
	}
	s.logger.Warn("chain reorganization",
		zap.Uint64("ancestor", height),
		zap.Uint64("stored", highest.Height),
		zap.Uint64("depth", highest.Height-height))
	return s.rewind(ctx, height)
}

// rewind unconfirms transactions confirmed above height and deletes the blocks above it.
// It is idempotent.
func (s *Service) rewind(ctx context.Context, height uint64) error {
	started := time.Now()
	txids, err := s.store.GetTransactionsConfirmedAfterHeight(ctx, height)
	if err != nil {
		return fmt.Errorf("rewind to %d: %w", height, err)
	}
	if len(txids) > 0 {
		if err := s.store.UnconfirmTransactions(ctx, txids); err != nil {
			return fmt.Errorf("rewind to %d: %w", height, err)
		}
	}
	if err := s.store.DeleteBlocksAfterHeight(ctx, height); err != nil {
		return fmt.Errorf("rewind to %d: %w", height, err)
	}

	s.metrics.ObserveRewind(height, len(txids))
	record := model.BlockRecord{
		Kind:     model.JournalRewind,
		Height:   height,
		TxCount:  len(txids),
		Duration: time.Since(started),
	}
	if err := s.journal.RecordBlock(ctx, record); err != nil {
		s.logger.Warn("journal rewind failed", zap.Uint64("height", height), zap.Error(err))
	}
	s.logger.Info("rewound", zap.Uint64("height", height), zap.Int("unconfirmed", len(txids)))
	return nil
}
