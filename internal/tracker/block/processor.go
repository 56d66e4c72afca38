// Package block applies one block to the store: relevance filtering, persistence of the
// block row and its relevant transactions, confirmation and notification.
package block

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	confirmChunkSize   = 100
	confirmConcurrency = 10
)

// Outcome summarizes a processed block.
type Outcome struct {
	BlockID  int64
	Relevant int
	Matched  int
}

// Processor implements the per-block steps.
type Processor struct {
	filter   Filter
	store    Store
	cache    Cache
	notifier Notifier
	journal  Journal
	metrics  Metrics
	logger   *zap.Logger
}

// NewProcessor constructs a Processor. journal may be nil.
func NewProcessor(
	filter Filter,
	store Store,
	cache Cache,
	notifier Notifier,
	journal Journal,
	metrics Metrics,
	logger *zap.Logger,
) *Processor {
	if journal == nil {
		journal = nopJournal{}
	}
	return &Processor{
		filter:   filter,
		store:    store,
		cache:    cache,
		notifier: notifier,
		journal:  journal,
		metrics:  metrics,
		logger:   logger.Named("block"),
	}
}

// Process filters the block and commits the result.
func (p *Processor) Process(ctx context.Context, block *model.Block) (Outcome, error) {
	res, err := p.filter.Relevant(ctx, block.Transactions)
	if err != nil {
		return Outcome{}, fmt.Errorf("filter block %d: %w", block.Header.Height, err)
	}
	return p.Commit(ctx, block, res)
}

// Commit persists a filtered block. Matched transactions are saved unconfirmed, the block
// row is added with its parent link, and every relevant transaction is then confirmed
// against it. Events go out only after the store is updated.
func (p *Processor) Commit(ctx context.Context, block *model.Block, res relevance.Result) (out Outcome, err error) {
	started := time.Now()
	header := block.Header
	defer func() {
		p.metrics.ObserveBlock(err, len(block.Transactions), out.Relevant, started)
	}()

	for _, tx := range res.Matched {
		if err = p.store.SaveTransaction(ctx, tx.Tracked(nil)); err != nil {
			return Outcome{}, fmt.Errorf("block %d: %w", header.Height, err)
		}
	}

	blockID, err := p.registerBlock(ctx, header)
	if err != nil {
		return Outcome{}, err
	}

	relevant := res.Relevant()
	txids := make([]string, 0, len(relevant))
	for _, tx := range relevant {
		txids = append(txids, tx.TxID)
	}
	if err = p.confirm(ctx, txids, blockID); err != nil {
		return Outcome{}, fmt.Errorf("block %d: %w", header.Height, err)
	}
	for _, txid := range txids {
		p.cache.Set(txid, true)
	}
	for _, tx := range res.Irrelevant {
		p.cache.Set(tx.TxID, false)
	}

	p.notify(ctx, block, res.Matched)

	out = Outcome{BlockID: blockID, Relevant: len(relevant), Matched: len(res.Matched)}
	record := model.BlockRecord{
		Kind:     model.JournalBlock,
		Height:   header.Height,
		Hash:     header.Hash,
		TxCount:  len(block.Transactions),
		Relevant: out.Relevant,
		Duration: time.Since(started),
	}
	if jerr := p.journal.RecordBlock(ctx, record); jerr != nil {
		p.logger.Warn("journal block failed", zap.Uint64("height", header.Height), zap.Error(jerr))
	}
	p.logger.Info("finished block",
		zap.Uint64("height", header.Height),
		zap.String("hash", header.Hash),
		zap.Int("txs", len(block.Transactions)),
		zap.Int("relevant", out.Relevant),
		zap.Duration("elapsed", time.Since(started)))
	return out, nil
}

func (p *Processor) registerBlock(ctx context.Context, header model.BlockHeader) (int64, error) {
	parent, err := p.store.GetBlockByHash(ctx, header.PreviousHash)
	if err != nil {
		return 0, fmt.Errorf("lookup parent of block %d: %w", header.Height, err)
	}
	var parentID *int64
	if parent != nil {
		parentID = &parent.ID
	}

	id, err := p.store.AddBlock(ctx, model.NewBlock{
		Height:   header.Height,
		Hash:     header.Hash,
		Time:     header.Time,
		ParentID: parentID,
	})
	if err != nil {
		return 0, fmt.Errorf("add block %d: %w", header.Height, err)
	}
	p.logger.Debug("added block", zap.Uint64("height", header.Height), zap.Int64("id", id))
	return id, nil
}

func (p *Processor) confirm(ctx context.Context, txids []string, blockID int64) error {
	chunks := workerpool.Chunks(txids, confirmChunkSize)
	return workerpool.Process(ctx, confirmConcurrency, chunks, func(ctx context.Context, chunk []string) error {
		return p.store.ConfirmTransactions(ctx, chunk, blockID)
	}, nil)
}

// notify sends one event per matched transaction followed by the block event. Failures
// are logged: the store already holds the block and downstream consumers resync from it.
func (p *Processor) notify(ctx context.Context, block *model.Block, matched []*model.Transaction) {
	height := block.Header.Height
	for _, tx := range matched {
		if err := p.notifier.PublishTransaction(ctx, tx.TxID); err != nil {
			p.logger.Warn("publish transaction failed", zap.String("txid", tx.TxID), zap.Error(err))
		}
		if err := p.journal.RecordTransaction(ctx, model.NewTxRecord(tx, &height)); err != nil {
			p.logger.Warn("journal transaction failed", zap.String("txid", tx.TxID), zap.Error(err))
		}
	}

	event := model.BlockEvent{Height: height, Hash: block.Header.Hash}
	if err := p.notifier.PublishBlock(ctx, event); err != nil {
		p.logger.Warn("publish block failed", zap.Uint64("height", height), zap.Error(err))
	}
}

type nopJournal struct{}

func (nopJournal) RecordBlock(context.Context, model.BlockRecord) error    { return nil }
func (nopJournal) RecordTransaction(context.Context, model.TxRecord) error { return nil }
