// Package notify publishes block and transaction events to downstream consumers.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"go.uber.org/zap"
)

const (
	DefaultBlockTopic       = "block"
	DefaultTransactionTopic = "transaction"
)

// Topics names the outbound streams.
type Topics struct {
	Block       string
	Transaction string
}

func (t Topics) withDefaults() Topics {
	if t.Block == "" {
		t.Block = DefaultBlockTopic
	}
	if t.Transaction == "" {
		t.Transaction = DefaultTransactionTopic
	}
	return t
}

// Publisher sends block events as JSON {height, hash} and transaction events as the
// bare txid.
type Publisher struct {
	pub     message.Publisher
	topics  Topics
	metrics Metrics
	logger  *zap.Logger
}

// NewPublisher wraps pub.
func NewPublisher(pub message.Publisher, topics Topics, metrics Metrics, logger *zap.Logger) (*Publisher, error) {
	if pub == nil {
		return nil, errors.New("message publisher is required")
	}
	if metrics == nil {
		return nil, errors.New("notify metrics is required")
	}
	return &Publisher{
		pub:     pub,
		topics:  topics.withDefaults(),
		metrics: metrics,
		logger:  logger.Named("notify"),
	}, nil
}

// PublishBlock announces a block appended to the store.
func (p *Publisher) PublishBlock(ctx context.Context, event model.BlockEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode block event: %w", err)
	}
	return p.publish(ctx, p.topics.Block, payload)
}

// PublishTransaction announces a relevant transaction.
func (p *Publisher) PublishTransaction(ctx context.Context, txid string) error {
	return p.publish(ctx, p.topics.Transaction, []byte(txid))
}

func (p *Publisher) publish(ctx context.Context, topic string, payload []byte) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe(topic, err, started)
	}()

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err = p.pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	p.logger.Debug("published",
		zap.String("topic", topic),
		zap.String("msg_uuid", msg.UUID),
		zap.Duration("duration", time.Since(started)))
	return nil
}

// Close closes the underlying publisher.
func (p *Publisher) Close() error {
	return p.pub.Close()
}
