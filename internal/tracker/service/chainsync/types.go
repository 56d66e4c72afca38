package chainsync

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/block"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node is the part of the node RPC surface used for chain sync.
	Node interface {
		ChainInfo(ctx context.Context) (model.ChainInfo, error)
		HeaderAt(ctx context.Context, height uint64) (model.BlockHeader, error)
		BlockHeader(ctx context.Context, hash string) (model.BlockHeader, error)
		BlockAt(ctx context.Context, height uint64) (*model.Block, error)
	}

	// Store holds the persisted chain.
	Store interface {
		GetHighestBlock(ctx context.Context) (model.HighestBlock, error)
		GetBlockByHash(ctx context.Context, hash string) (*model.PersistedBlock, error)
		AddBlock(ctx context.Context, block model.NewBlock) (int64, error)
		DeleteBlocksAfterHeight(ctx context.Context, height uint64) error
		GetTransactionsConfirmedAfterHeight(ctx context.Context, height uint64) ([]string, error)
		UnconfirmTransactions(ctx context.Context, txids []string) error
	}

	// BlockProcessor applies one block to the store.
	BlockProcessor interface {
		Process(ctx context.Context, b *model.Block) (block.Outcome, error)
	}

	// Journal appends analytics rows.
	Journal interface {
		RecordBlock(ctx context.Context, record model.BlockRecord) error
	}

	// Metrics records chain sync progress.
	Metrics interface {
		ObserveCatchup(err error, started time.Time)
		ObserveBlockHash(err error, started time.Time)
		ObserveBlockRange(err error, blocks int, started time.Time)
		ObserveRewind(height uint64, unconfirmed int)
		SetHeight(height uint64)
	}
)
