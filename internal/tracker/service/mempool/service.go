// Package mempool tracks wallet-relevant unconfirmed transactions: live node mempool
// transactions, externally pushed transactions and reconciliation of stored
// unconfirmed ones.
package mempool

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service is the mempool tracker.
type Service struct {
	node     Node
	decoder  Decoder
	store    Store
	filter   Filter
	cache    Cache
	notifier Notifier
	journal  Journal
	metrics  Metrics
	logger   *zap.Logger
	cfg      Config

	buffer   *relevance.Bundle
	active   atomic.Bool
	checking atomic.Bool
}

// NewService builds a Service. journal may be nil.
func NewService(
	node Node,
	decoder Decoder,
	store Store,
	filter Filter,
	cache Cache,
	notifier Notifier,
	journal Journal,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("mempool metrics is required")
	}
	if notifier == nil {
		return nil, errors.New("mempool notifier is required")
	}
	if journal == nil {
		journal = nopJournal{}
	}
	return &Service{
		node:     node,
		decoder:  decoder,
		store:    store,
		filter:   filter,
		cache:    cache,
		notifier: notifier,
		journal:  journal,
		metrics:  metrics,
		logger:   logger.Named("mempool"),
		cfg:      cfg.withDefaults(),
		buffer:   relevance.NewBundle(),
	}, nil
}

// Run reconciles unconfirmed transactions, then buffers rawTxs and runs both periodic
// tasks until ctx is done.
func (s *Service) Run(ctx context.Context, rawTxs <-chan []byte) error {
	s.checkUnconfirmed(ctx)
	s.processMempool(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return clock.Every(gctx, s.cfg.UnconfirmedInterval, s.checkUnconfirmed)
	})
	g.Go(func() error {
		return clock.Every(gctx, s.cfg.MempoolInterval, s.processMempool)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case raw, ok := <-rawTxs:
				if !ok {
					s.logger.Info("mempool transaction feed closed")
					return nil
				}
				s.OnRawTx(raw)
			}
		}
	})
	return g.Wait()
}

func (s *Service) checkUnconfirmed(ctx context.Context) {
	if err := s.CheckUnconfirmed(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("check unconfirmed transactions failed", zap.Error(err))
	}
}

func (s *Service) processMempool(ctx context.Context) {
	if err := s.ProcessMempool(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("process mempool failed", zap.Error(err))
	}
}

// Active reports whether live mempool transactions are being buffered.
func (s *Service) Active() bool {
	return s.active.Load()
}

// OnRawTx buffers a serialized mempool transaction. It is a no-op while inactive.
func (s *Service) OnRawTx(raw []byte) {
	if !s.active.Load() {
		return
	}
	tx, err := s.decoder.DecodeTransaction(raw)
	if err != nil {
		s.logger.Warn("dropping undecodable mempool transaction", zap.Error(err))
		return
	}
	tx.Topic = model.TopicMempool
	s.buffer.Add(tx)
}

// OnPushTx evaluates an externally submitted transaction right away. payload is hex
// text or raw bytes. Transactions with a cached verdict are skipped.
func (s *Service) OnPushTx(ctx context.Context, payload []byte) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObservePushTx(err, started)
	}()

	tx, err := s.decoder.DecodeTransaction(pushedBytes(payload))
	if err != nil {
		return fmt.Errorf("decode pushed transaction: %w", err)
	}
	if s.cache.Has(tx.TxID) {
		s.logger.Debug("pushed transaction already evaluated", zap.String("txid", tx.TxID))
		return nil
	}
	s.logger.Info("processing pushed transaction", zap.String("txid", tx.TxID))
	tx.Topic = model.TopicMempool
	_, err = s.evaluate(ctx, []*model.Transaction{tx})
	return err
}

func pushedBytes(payload []byte) []byte {
	text := bytes.TrimSpace(payload)
	if len(text) > 0 && len(text)%2 == 0 {
		if raw, err := hex.DecodeString(string(text)); err == nil {
			return raw
		}
	}
	return payload
}

// ProcessMempool refreshes the active flag and evaluates the buffered transactions that
// have no cached verdict. On failure the snapshot is buffered again.
func (s *Service) ProcessMempool(ctx context.Context) (err error) {
	started := time.Now()
	var evaluated, relevant int
	defer func() {
		s.metrics.ObserveMempool(err, evaluated, relevant, started)
	}()

	s.refreshActive(ctx)

	snapshot := s.buffer.Swap()
	pending := make([]*model.Transaction, 0, len(snapshot))
	for _, tx := range snapshot {
		if !s.cache.Has(tx.TxID) {
			pending = append(pending, tx)
		}
	}
	s.logger.Debug("processing mempool",
		zap.Bool("active", s.active.Load()),
		zap.Int("buffered", len(snapshot)),
		zap.Int("pending", len(pending)))
	if len(pending) == 0 {
		return nil
	}

	evaluated = len(pending)
	relevant, err = s.evaluate(ctx, pending)
	if err != nil {
		s.buffer.Add(pending...)
		return err
	}
	return nil
}

// evaluate runs both relevance passes over txs, stores the matched ones as unconfirmed
// and records a verdict for every transaction looked up.
func (s *Service) evaluate(ctx context.Context, txs []*model.Transaction) (int, error) {
	res, err := s.filter.Relevant(ctx, txs)
	if err != nil {
		return 0, fmt.Errorf("filter transactions: %w", err)
	}

	for _, tx := range res.Matched {
		if err := s.store.SaveTransaction(ctx, tx.Tracked(nil)); err != nil {
			return 0, fmt.Errorf("save transaction %s: %w", tx.TxID, err)
		}
		s.cache.Set(tx.TxID, true)

		if err := s.notifier.PublishTransaction(ctx, tx.TxID); err != nil {
			s.logger.Warn("publish transaction failed", zap.String("txid", tx.TxID), zap.Error(err))
		}
		if err := s.journal.RecordTransaction(ctx, model.NewTxRecord(tx, nil)); err != nil {
			s.logger.Warn("journal transaction failed", zap.String("txid", tx.TxID), zap.Error(err))
		}
		s.logger.Info("relevant mempool transaction", zap.String("txid", tx.TxID))
	}
	for _, tx := range res.Irrelevant {
		s.cache.Set(tx.TxID, false)
	}
	return len(res.Matched), nil
}

// refreshActive turns live ingestion on when the store is within ActiveTolerance blocks
// of the node's header tip. On lookup failure the previous state is kept.
func (s *Service) refreshActive(ctx context.Context) {
	info, err := s.node.ChainInfo(ctx)
	if err != nil {
		s.logger.Warn("refresh active state", zap.Error(err))
		return
	}
	highest, err := s.store.GetHighestBlock(ctx)
	if err != nil {
		s.logger.Warn("refresh active state", zap.Error(err))
		return
	}

	active := !highest.Empty() && highest.Height > 0 &&
		info.Headers >= s.cfg.BootstrapHeight &&
		info.Headers <= highest.Height+s.cfg.ActiveTolerance
	if s.active.Swap(active) != active {
		s.logger.Info("mempool tracking state changed",
			zap.Bool("active", active),
			zap.Uint64("stored", highest.Height),
			zap.Uint64("headers", info.Headers))
	}
	s.metrics.SetActive(active)
}

type nopJournal struct{}

func (nopJournal) RecordTransaction(context.Context, model.TxRecord) error { return nil }
