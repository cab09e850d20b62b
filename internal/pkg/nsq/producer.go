package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/loanhub/internal/pkg/logger"
)

// Publisher publishes JSON messages to a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(newNSQLogger(), nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends message, JSON encoded, to topic
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.DebugCtx(ctx, "Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// Ping checks that nsqd is reachable
func (p *Producer) Ping(ctx context.Context) error {
	return p.producer.Ping()
}

// NopPublisher drops every message. Used when no nsqd address is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	logger.DebugCtx(ctx, "Event publishing disabled, dropping message", logger.String("topic", topic))
	return nil
}
