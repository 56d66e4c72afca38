package notify

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records publish outcomes per topic.
	Metrics interface {
		Observe(topic string, err error, started time.Time)
	}
)
