package clickhouse

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn prepares insert batches.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	// Batch is a prepared insert.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Metrics records journal write outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
