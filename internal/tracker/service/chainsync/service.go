// Package chainsync keeps the stored chain in step with the node: startup catch-up,
// new block hashes, reorganizations and rescans.
package chainsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrFatal marks failures after which the stored chain may be partially applied.
	// The process is expected to exit and resync from the store on restart.
	ErrFatal = errors.New("fatal chain sync error")
	// ErrBusy is returned when too many block hashes wait for the reorg lock.
	ErrBusy = errors.New("too many pending block hashes")
)

// Service is the chain synchronization state machine.
type Service struct {
	node      Node
	store     Store
	processor BlockProcessor
	journal   Journal
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config
	sleep     func(context.Context, time.Duration) error

	// lock serializes backtrace, rewind and block range processing.
	lock    *semaphore.Weighted
	pending atomic.Int64
}

// NewService builds a Service. journal may be nil.
func NewService(
	node Node,
	store Store,
	processor BlockProcessor,
	journal Journal,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("chain sync metrics is required")
	}
	if journal == nil {
		journal = nopJournal{}
	}
	return &Service{
		node:      node,
		store:     store,
		processor: processor,
		journal:   journal,
		metrics:   metrics,
		logger:    logger.Named("chainsync"),
		cfg:       cfg.withDefaults(),
		sleep:     clock.SleepWithContext,
		lock:      semaphore.NewWeighted(1),
	}, nil
}

// Run catches up with the node and then handles block hashes until ctx is done, hashes
// is closed or a fatal error occurs.
func (s *Service) Run(ctx context.Context, hashes <-chan string) error {
	if err := s.Catchup(ctx); err != nil {
		return err
	}
	s.logger.Info("listening for blocks")

	g, gctx := errgroup.WithContext(ctx)
loop:
	for {
		select {
		case <-gctx.Done():
			break loop
		case hash, ok := <-hashes:
			if !ok {
				break loop
			}
			g.Go(func() error {
				return s.handleBlockHash(gctx, hash)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Service) handleBlockHash(ctx context.Context, hash string) error {
	err := s.OnBlockHash(ctx, hash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrFatal):
		return err
	case ctx.Err() != nil:
		return nil
	case errors.Is(err, ErrBusy):
		s.logger.Warn("dropping block hash", zap.String("hash", hash), zap.Error(err))
		return nil
	default:
		s.logger.Error("block hash failed", zap.String("hash", hash), zap.Error(err))
		return nil
	}
}

func (s *Service) acquire(ctx context.Context) error {
	// one holder plus at most MaxPendingHashes waiters
	if s.pending.Add(1) > int64(s.cfg.MaxPendingHashes)+1 {
		s.pending.Add(-1)
		return ErrBusy
	}
	if err := s.lock.Acquire(ctx, 1); err != nil {
		s.pending.Add(-1)
		return err
	}
	return nil
}

func (s *Service) release() {
	s.lock.Release(1)
	s.pending.Add(-1)
}

func fatal(err error) error {
	return fmt.Errorf("%w: %w", ErrFatal, err)
}

// heightRange returns from..to inclusive.
func heightRange(from, to uint64) []uint64 {
	if from > to {
		return nil
	}
	res := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		res = append(res, h)
	}
	return res
}

// nextHeight is the first height missing from the store.
func nextHeight(highest model.HighestBlock) uint64 {
	if highest.Empty() {
		return 0
	}
	return highest.Height + 1
}

type firstError struct {
	mu  sync.Mutex
	err error
}

func (e *firstError) Set(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err == nil {
		e.err = err
	}
}

func (e *firstError) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

type nopJournal struct{}

func (nopJournal) RecordBlock(context.Context, model.BlockRecord) error { return nil }
