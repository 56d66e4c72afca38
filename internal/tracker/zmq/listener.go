// Package zmq receives block and transaction notifications published by bitcoind.
package zmq

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightninglabs/gozmq"
	"go.uber.org/zap"
)

const (
	TopicHashBlock = "hashblock"
	TopicRawTx     = "rawtx"

	DefaultPollInterval = 5 * time.Second

	seqNumLen = 4
)

// Listener reads one bitcoind notification topic.
type Listener struct {
	conn     Receiver
	topic    string
	dataSize int
	metrics  Metrics
	logger   *zap.Logger
}

// Dial subscribes to topic at endpoint. pollInterval bounds a single receive; a
// timed-out receive is retried silently.
func Dial(endpoint, topic string, pollInterval time.Duration, metrics Metrics, logger *zap.Logger) (*Listener, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("zmq %s endpoint is required", topic)
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	conn, err := gozmq.Subscribe(endpoint, []string{topic}, pollInterval)
	if err != nil {
		return nil, fmt.Errorf("subscribe to zmq %s: %w", topic, err)
	}
	return newListener(conn, topic, metrics, logger), nil
}

func newListener(conn Receiver, topic string, metrics Metrics, logger *zap.Logger) *Listener {
	dataSize := chainhash.HashSize
	if topic == TopicRawTx {
		dataSize = int(wire.MaxBlockPayload)
	}
	return &Listener{
		conn:     conn,
		topic:    topic,
		dataSize: dataSize,
		metrics:  metrics,
		logger:   logger.Named("zmq").With(zap.String("topic", topic)),
	}
}

// Run hands a copy of every message body to handle until ctx is done or the connection
// is closed.
func (l *Listener) Run(ctx context.Context, handle func(payload []byte)) error {
	stop := context.AfterFunc(ctx, func() {
		_ = l.conn.Close()
	})
	defer stop()

	l.logger.Info("listening")

	// bitcoind messages have three parts: topic, body and sequence number
	var (
		command = make([]byte, len(l.topic))
		data    = make([]byte, l.dataSize)
		seqNum  [seqNumLen]byte
	)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		bufs, err := l.conn.Receive([][]byte{command, data, seqNum[:]})
		if err != nil {
			if errors.Is(err, io.EOF) {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("zmq %s connection closed", l.topic)
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			l.metrics.ObserveReceive(l.topic, err)
			l.logger.Error("receive failed", zap.Error(err))
			continue
		}
		if len(bufs) < 2 {
			continue
		}

		if event := string(bufs[0]); event != l.topic {
			if event != "" && isASCII(event) {
				l.logger.Warn("unexpected event type", zap.String("event", event))
			}
			continue
		}

		l.metrics.ObserveReceive(l.topic, nil)
		handle(bytes.Clone(bufs[1]))
	}
}

// BlockHashes forwards hashblock notifications as hex block hashes.
func (l *Listener) BlockHashes(ctx context.Context, out chan<- string) error {
	return l.Run(ctx, func(payload []byte) {
		hash, err := BlockHash(payload)
		if err != nil {
			l.logger.Warn("dropping block notification", zap.Error(err))
			return
		}
		select {
		case out <- hash:
		case <-ctx.Done():
		}
	})
}

// RawTransactions forwards rawtx notifications.
func (l *Listener) RawTransactions(ctx context.Context, out chan<- []byte) error {
	return l.Run(ctx, func(payload []byte) {
		select {
		case out <- payload:
		case <-ctx.Done():
		}
	})
}

// BlockHash formats a hashblock body. bitcoind sends the hash in display byte order.
func BlockHash(payload []byte) (string, error) {
	if len(payload) != chainhash.HashSize {
		return "", fmt.Errorf("block hash has %d bytes, want %d", len(payload), chainhash.HashSize)
	}
	return hex.EncodeToString(payload), nil
}

func isASCII(s string) bool {
	for _, c := range s {
		if c > 127 {
			return false
		}
	}
	return true
}
