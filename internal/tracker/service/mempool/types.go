package mempool

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node is the part of the node RPC surface used for mempool tracking.
	Node interface {
		ChainInfo(ctx context.Context) (model.ChainInfo, error)
		TransactionStatuses(ctx context.Context, txids []string) ([]model.TxStatus, error)
	}

	// Decoder parses serialized transactions.
	Decoder interface {
		DecodeTransaction(raw []byte) (*model.Transaction, error)
	}

	// Store holds tracked transactions.
	Store interface {
		GetHighestBlock(ctx context.Context) (model.HighestBlock, error)
		GetBlockByHash(ctx context.Context, hash string) (*model.PersistedBlock, error)
		SaveTransaction(ctx context.Context, tx model.TrackedTransaction) error
		ConfirmTransactions(ctx context.Context, txids []string, blockID int64) error
		GetUnconfirmedTransactions(ctx context.Context) ([]string, error)
		DeleteTransaction(ctx context.Context, txid string) error
	}

	// Filter selects relevant transactions.
	Filter interface {
		Relevant(ctx context.Context, txs []*model.Transaction) (relevance.Result, error)
	}

	// Cache holds relevance verdicts.
	Cache interface {
		Has(txid string) bool
		Set(txid string, relevant bool)
		Delete(txid string)
	}

	// Notifier publishes outbound transaction events.
	Notifier interface {
		PublishTransaction(ctx context.Context, txid string) error
	}

	// Journal appends analytics rows.
	Journal interface {
		RecordTransaction(ctx context.Context, record model.TxRecord) error
	}

	// Metrics records mempool tracking outcomes.
	Metrics interface {
		ObserveMempool(err error, txs, relevant int, started time.Time)
		ObservePushTx(err error, started time.Time)
		ObserveUnconfirmed(err error, txs int, started time.Time)
		ObserveReconciled(confirmed, dropped int)
		SetActive(active bool)
	}
)
