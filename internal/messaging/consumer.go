package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/potlock/indexer/internal/adapter"
	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/logger"
	"github.com/potlock/indexer/internal/projector"
	"github.com/potlock/indexer/internal/store"
)

// Config holds the configuration for the block consumer
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	Subject        string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Consumer defines the interface for the block stream consumer
type Consumer interface {
	// Run starts consuming blocks until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	store     store.Store
	projector *projector.Projector
	json      adapter.JSON
	config    Config
}

// NewConsumer connects to NATS and prepares a durable block consumer.
func NewConsumer(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	proj *projector.Projector,
	jsonAdapter adapter.JSON,
) (Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:        nc,
		js:        js,
		store:     st,
		projector: proj,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// Run starts the block consumer. Blocks must be applied in height order, so
// messages are processed one at a time; concurrency lives inside the
// per-block projection instead.
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting block consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: c.config.Subject,
	}

	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := jsConsumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := jsConsumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming blocks")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down block consumer")
			return ctx.Err()
		case msg := <-msgChan:
			c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single block message
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var block domain.Block
	if err := c.json.Unmarshal(msg.Data(), &block); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal block"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	height := block.Header.Height
	fields := []zap.Field{
		zap.Uint64("height", height),
		zap.String("hash", block.Header.Hash),
	}
	if metadata != nil {
		fields = append(fields, zap.Uint64("deliveryCount", metadata.NumDelivered))
	}
	logger.Info("Received block", fields...)

	cursor, err := c.store.GetBlockCursor(ctx)
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to read block cursor"))
		c.nak(msg)
		return
	}

	// Redelivery of an already-applied block. Every projection is idempotent,
	// so acking without reprocessing is just a shortcut.
	if cursor != 0 && height <= cursor {
		logger.Info("Skipping already processed block", zap.Uint64("height", height), zap.Uint64("cursor", cursor))
		c.ack(msg)
		return
	}

	if cursor != 0 && height != cursor+1 {
		err := fmt.Errorf("block %d after cursor %d: %w", height, cursor, domain.ErrBlockOutOfOrder)
		logger.Error(err, zap.String("message", "Out of order block"))
		c.nak(msg)
		return
	}

	if err := c.projector.ProcessBlock(ctx, &block); err != nil {
		logger.Error(err, zap.String("message", "Failed to project block"), zap.Uint64("height", height))
		c.nak(msg)
		return
	}

	if err := c.store.SetBlockCursor(ctx, height); err != nil {
		logger.Error(err, zap.String("message", "Failed to advance block cursor"), zap.Uint64("height", height))
		c.nak(msg)
		return
	}

	c.ack(msg)
}

func (c *consumer) ack(msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

func (c *consumer) nak(msg adapter.Message) {
	if err := msg.Nak(); err != nil {
		logger.Error(err, zap.String("message", "Failed to NAK message"))
	}
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc != nil {
		c.nc.Close()
	}
}
