package blockworker

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/block"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Filter runs the two relevance passes separately.
	Filter interface {
		ByOutputs(ctx context.Context, txs []*model.Transaction) (relevance.Result, error)
		ByInputs(ctx context.Context, txs []*model.Transaction) (relevance.Result, error)
	}

	// Committer persists a filtered block.
	Committer interface {
		Commit(ctx context.Context, b *model.Block, res relevance.Result) (block.Outcome, error)
	}
)
