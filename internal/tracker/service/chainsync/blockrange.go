package chainsync

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/fifo"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/workerpool"
	"go.uber.org/zap"
)

// processBlockRange fetches blocks in parallel chunks and applies them strictly in
// order. Any failure is fatal.
func (s *Service) processBlockRange(ctx context.Context, heights []uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlockRange(err, len(heights), started)
	}()

	var failed firstError
	queue := fifo.New(func(b *model.Block) {
		if failed.Err() != nil {
			return
		}
		if _, err := s.processor.Process(ctx, b); err != nil {
			failed.Set(fatal(fmt.Errorf("process block %d: %w", b.Header.Height, err)))
			return
		}
		s.metrics.SetHeight(b.Header.Height)
	}, s.cfg.BlockQueueMark)

	for _, chunk := range workerpool.Chunks(heights, s.cfg.BlockChunkSize) {
		if err = queue.WaitBelowWatermark(ctx); err != nil {
			return err
		}
		if failed.Err() != nil {
			break
		}
		blocks, fetchErr := workerpool.Map(ctx, s.cfg.BlockWorkers, chunk, s.node.BlockAt)
		if fetchErr != nil {
			_ = queue.WaitDrained(ctx)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fatal(fmt.Errorf("fetch blocks %d-%d: %w", chunk[0], chunk[len(chunk)-1], fetchErr))
		}
		queue.Push(blocks...)
	}

	if err = queue.WaitDrained(ctx); err != nil {
		return err
	}
	if err = failed.Err(); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Rescan reprocesses stored blocks from..to. to is clamped to the highest stored height.
func (s *Service) Rescan(ctx context.Context, from, to uint64) error {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.lock.Release(1)

	highest, err := s.store.GetHighestBlock(ctx)
	if err != nil {
		return fmt.Errorf("get highest block: %w", err)
	}
	if highest.Empty() {
		s.logger.Info("nothing to rescan, store is empty")
		return nil
	}
	to = min(to, highest.Height)
	if from > to {
		s.logger.Info("nothing to rescan", zap.Uint64("from", from), zap.Uint64("to", to))
		return nil
	}
	s.logger.Info("rescanning", zap.Uint64("from", from), zap.Uint64("to", to))
	return s.processBlockRange(ctx, heightRange(from, to))
}
