package mempool

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/workerpool"
	"go.uber.org/zap"
)

// CheckUnconfirmed reconciles every stored unconfirmed transaction with the node:
// transactions the node no longer knows are deleted, those mined in a stored block are
// confirmed, the rest stay unconfirmed. Overlapping calls return immediately.
func (s *Service) CheckUnconfirmed(ctx context.Context) (err error) {
	if !s.checking.CompareAndSwap(false, true) {
		s.logger.Debug("unconfirmed check already running")
		return nil
	}
	defer s.checking.Store(false)

	started := time.Now()
	var txids []string
	defer func() {
		s.metrics.ObserveUnconfirmed(err, len(txids), started)
	}()

	txids, err = s.store.GetUnconfirmedTransactions(ctx)
	if err != nil {
		return fmt.Errorf("get unconfirmed transactions: %w", err)
	}
	if len(txids) == 0 {
		return nil
	}

	var confirmed, dropped atomic.Int64
	chunks := workerpool.Chunks(txids, s.cfg.StatusChunkSize)
	err = workerpool.Process(ctx, s.cfg.StatusWorkers, chunks, func(ctx context.Context, chunk []string) error {
		statuses, err := s.node.TransactionStatuses(ctx, chunk)
		if err != nil {
			s.logger.Warn("get transaction statuses", zap.Int("txs", len(chunk)), zap.Error(err))
			return nil
		}
		c, d := s.reconcile(ctx, statuses)
		confirmed.Add(int64(c))
		dropped.Add(int64(d))
		return nil
	}, nil)
	if err != nil {
		return fmt.Errorf("reconcile unconfirmed transactions: %w", err)
	}

	s.metrics.ObserveReconciled(int(confirmed.Load()), int(dropped.Load()))
	s.logger.Info("checked unconfirmed transactions",
		zap.Int("txs", len(txids)),
		zap.Int64("confirmed", confirmed.Load()),
		zap.Int64("dropped", dropped.Load()),
		zap.Duration("duration", time.Since(started)))
	return nil
}

// reconcile applies node statuses of one chunk. Store failures are logged and leave the
// transaction for the next pass.
func (s *Service) reconcile(ctx context.Context, statuses []model.TxStatus) (confirmed, dropped int) {
	byBlock := make(map[string][]string)
	for _, st := range statuses {
		switch {
		case !st.Found:
			s.cache.Delete(st.TxID)
			if err := s.store.DeleteTransaction(ctx, st.TxID); err != nil {
				s.logger.Warn("delete dropped transaction", zap.String("txid", st.TxID), zap.Error(err))
				continue
			}
			s.logger.Info("transaction dropped from mempool", zap.String("txid", st.TxID))
			dropped++
		case st.BlockHash != "":
			byBlock[st.BlockHash] = append(byBlock[st.BlockHash], st.TxID)
		}
	}

	for hash, txids := range byBlock {
		block, err := s.store.GetBlockByHash(ctx, hash)
		if err != nil {
			s.logger.Warn("lookup confirming block", zap.String("hash", hash), zap.Error(err))
			continue
		}
		if block == nil {
			continue
		}
		if err := s.store.ConfirmTransactions(ctx, txids, block.ID); err != nil {
			s.logger.Warn("confirm transactions", zap.String("hash", hash), zap.Error(err))
			continue
		}
		s.logger.Info("transactions confirmed", zap.String("hash", hash), zap.Strings("txids", txids))
		confirmed += len(txids)
	}
	return confirmed, dropped
}
