package block

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Filter selects the relevant transactions of a block.
	Filter interface {
		Relevant(ctx context.Context, txs []*model.Transaction) (relevance.Result, error)
	}

	// Store persists blocks and their relevant transactions.
	Store interface {
		SaveTransaction(ctx context.Context, tx model.TrackedTransaction) error
		GetBlockByHash(ctx context.Context, hash string) (*model.PersistedBlock, error)
		AddBlock(ctx context.Context, block model.NewBlock) (int64, error)
		ConfirmTransactions(ctx context.Context, txids []string, blockID int64) error
	}

	// Cache records relevance verdicts.
	Cache interface {
		Set(txid string, relevant bool)
	}

	// Notifier publishes outbound events.
	Notifier interface {
		PublishBlock(ctx context.Context, event model.BlockEvent) error
		PublishTransaction(ctx context.Context, txid string) error
	}

	// Journal appends analytics rows.
	Journal interface {
		RecordBlock(ctx context.Context, record model.BlockRecord) error
		RecordTransaction(ctx context.Context, record model.TxRecord) error
	}

	// Metrics records block processing outcomes.
	Metrics interface {
		ObserveBlock(err error, txs, relevant int, started time.Time)
	}
)
