package chainsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/fifo"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/workerpool"
	"go.uber.org/zap"
)

// Catchup brings the store up to the node's tip. Failures other than ErrFatal are
// retried after RetryDelay until ctx is done.
func (s *Service) Catchup(ctx context.Context) error {
	for {
		err := s.catchup(ctx)
		if err == nil || errors.Is(err, ErrFatal) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("catchup failed, retrying", zap.Error(err), zap.Duration("sleep", s.cfg.RetryDelay))
		if sleepErr := s.sleep(ctx, s.cfg.RetryDelay); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *Service) catchup(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveCatchup(err, started)
	}()

	info, err := s.node.ChainInfo(ctx)
	if err != nil {
		return fmt.Errorf("wait for node: %w", err)
	}
	highest, err := s.store.GetHighestBlock(ctx)
	if err != nil {
		return fmt.Errorf("get highest block: %w", err)
	}

	if s.needsIBD(highest, info) {
		s.logger.Info("starting initial block download",
			zap.Uint64("stored", highest.Height),
			zap.Uint64("headers", info.Headers))
		if err = s.catchupIBD(ctx); err != nil {
			return err
		}
	}
	return s.catchupNormal(ctx)
}

func (s *Service) needsIBD(highest model.HighestBlock, info model.ChainInfo) bool {
	return highest.Empty() ||
		highest.Height < s.cfg.BootstrapHeight ||
		highest.Height+s.cfg.IBDThreshold < info.Headers
}

// catchupIBD stores headers only, in rounds, until the store is within one block of
// the node's header tip.
func (s *Service) catchupIBD(ctx context.Context) error {
	for {
		info, err := s.node.ChainInfo(ctx)
		if err != nil {
			return fmt.Errorf("get chain info: %w", err)
		}
		highest, err := s.store.GetHighestBlock(ctx)
		if err != nil {
			return fmt.Errorf("get highest block: %w", err)
		}
		next := nextHeight(highest)

		switch {
		case info.Headers == 0 || info.Blocks == 0:
			s.logger.Info("waiting for node headers", zap.Duration("sleep", s.cfg.NoHeadersDelay))
			if err := s.sleep(ctx, s.cfg.NoHeadersDelay); err != nil {
				return err
			}
			continue
		case info.Headers <= next:
			s.logger.Info("initial block download finished", zap.Uint64("height", highest.Height))
			return nil
		case info.Blocks < next:
			s.logger.Info("waiting for node blocks", zap.Duration("sleep", s.cfg.NoBlocksDelay))
			if err := s.sleep(ctx, s.cfg.NoBlocksDelay); err != nil {
				return err
			}
			continue
		}

		var parent *int64
		if !highest.Empty() {
			parent = &highest.ID
		}
		if err := s.syncHeaders(ctx, heightRange(next, info.Blocks), parent); err != nil {
			return err
		}
	}
}

// syncHeaders fetches headers in parallel chunks and stores them one by one in height
// order, each linked to the previous one.
func (s *Service) syncHeaders(ctx context.Context, heights []uint64, parent *int64) error {
	s.logger.Info("syncing headers", zap.Int("count", len(heights)))

	var failed firstError
	queue := fifo.New(func(header model.BlockHeader) {
		if failed.Err() != nil {
			return
		}
		started := time.Now()
		id, err := s.store.AddBlock(ctx, model.NewBlock{
			Height:   header.Height,
			Hash:     header.Hash,
			Time:     header.Time,
			ParentID: parent,
		})
		if err != nil {
			failed.Set(fatal(fmt.Errorf("store header %d: %w", header.Height, err)))
			return
		}
		parent = &id
		s.metrics.SetHeight(header.Height)
		record := model.BlockRecord{
			Kind:     model.JournalHeader,
			Height:   header.Height,
			Hash:     header.Hash,
			Duration: time.Since(started),
		}
		if err := s.journal.RecordBlock(ctx, record); err != nil {
			s.logger.Warn("journal header failed", zap.Uint64("height", header.Height), zap.Error(err))
		}
	}, s.cfg.HeaderQueueMark)

	for _, chunk := range workerpool.Chunks(heights, s.cfg.HeaderChunkSize) {
		if err := queue.WaitBelowWatermark(ctx); err != nil {
			return err
		}
		if failed.Err() != nil {
			break
		}
		headers, err := workerpool.Map(ctx, s.cfg.HeaderWorkers, chunk, s.node.HeaderAt)
		if err != nil {
			_ = queue.WaitDrained(ctx)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fatal(fmt.Errorf("fetch headers %d-%d: %w", chunk[0], chunk[len(chunk)-1], err))
		}
		queue.Push(headers...)
	}

	if err := queue.WaitDrained(ctx); err != nil {
		return err
	}
	if err := failed.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// catchupNormal processes the blocks between the store and the node's tip once. Later
// blocks arrive through block hash events.
func (s *Service) catchupNormal(ctx context.Context) error {
	info, err := s.node.ChainInfo(ctx)
	if err != nil {
		return fmt.Errorf("get chain info: %w", err)
	}
	highest, err := s.store.GetHighestBlock(ctx)
	if err != nil {
		return fmt.Errorf("get highest block: %w", err)
	}

	next := nextHeight(highest)
	if info.Blocks < next {
		s.logger.Info("store is synced", zap.Uint64("height", highest.Height))
		return nil
	}
	heights := heightRange(next, info.Blocks)
	s.logger.Info("syncing blocks", zap.Int("count", len(heights)), zap.Uint64("from", next))
	return s.processBlockRange(ctx, heights)
}
