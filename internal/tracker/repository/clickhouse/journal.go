// Package clickhouse implements the append-only tracker journal on ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/batcher"
	"go.uber.org/zap"
)

type blockRow struct {
	record     model.BlockRecord
	recordedAt time.Time
}

type txRow struct {
	record     model.TxRecord
	recordedAt time.Time
}

// Journal buffers block and transaction records and writes them in batches.
type Journal struct {
	conn    Conn
	network model.Network
	metrics Metrics
	now     func() time.Time

	blocks *batcher.Batcher[blockRow]
	txs    *batcher.Batcher[txRow]
}

// NewJournal opens a ClickHouse connection for dsn.
func NewJournal(dsn string, network model.Network, metrics Metrics, logger *zap.Logger, cfg batcher.Config) (*Journal, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return newJournal(driverConn{conn}, network, metrics, logger, cfg), nil
}

func newJournal(conn Conn, network model.Network, metrics Metrics, logger *zap.Logger, cfg batcher.Config) *Journal {
	logger = logger.Named("journal")
	j := &Journal{
		conn:    conn,
		network: network,
		metrics: metrics,
		now:     time.Now,
	}
	j.blocks = batcher.New(logger.With(zap.String("table", blockEventsTable)), cfg, j.insertBlockEvents)
	j.txs = batcher.New(logger.With(zap.String("table", txEventsTable)), cfg, j.insertTxEvents)
	return j
}

// Start begins background flushing.
func (j *Journal) Start(ctx context.Context) {
	j.blocks.Start(ctx)
	j.txs.Start(ctx)
}

// Close flushes buffered records and closes the connection.
func (j *Journal) Close() error {
	j.blocks.Stop()
	j.txs.Stop()
	return j.conn.Close()
}

// RecordBlock queues a block record.
func (j *Journal) RecordBlock(ctx context.Context, record model.BlockRecord) error {
	return j.blocks.Add(ctx, blockRow{record: record, recordedAt: j.now()})
}

// RecordTransaction queues a transaction record.
func (j *Journal) RecordTransaction(ctx context.Context, record model.TxRecord) error {
	return j.txs.Add(ctx, txRow{record: record, recordedAt: j.now()})
}

// driverConn narrows the clickhouse driver connection to Conn.
type driverConn struct {
	conn driver.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
