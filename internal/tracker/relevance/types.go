package relevance

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store answers which candidate keys belong to tracked wallet entities.
	Store interface {
		GetUngroupedHDAccountsByAddresses(ctx context.Context, addresses []string) ([]model.TrackedAddress, error)
		GetOutputSpends(ctx context.Context, outpoints []model.Outpoint) ([]model.TrackedOutput, error)
	}

	// Cache holds verdicts of transactions evaluated earlier.
	Cache interface {
		Get(txid string) (relevant, ok bool)
	}
)
