package pushtx

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Handler evaluates an externally submitted transaction.
	Handler interface {
		OnPushTx(ctx context.Context, payload []byte) error
	}

	// Metrics records handled messages per topic.
	Metrics interface {
		Observe(topic string, err error, started time.Time)
	}
)
