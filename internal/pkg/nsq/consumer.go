package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/retry"
)

// MessageHandler processes one message body. Returning an error requeues the message
// unless the error is marked retry.Permanent.
type MessageHandler func(ctx context.Context, body []byte) error

// ConsumerConfig describes where a consumer reads from
type ConsumerConfig struct {
	Topic            string
	Channel          string
	NSQDAddress      string
	LookupdAddresses []string
	MaxAttempts      uint16
	MaxInFlight      int
}

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// NewConsumer creates a consumer for cfg.Topic/cfg.Channel and connects it,
// preferring lookupd discovery when lookupd addresses are configured
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(newNSQLogger(), nsq.LogLevelWarning)
	consumer.AddHandler(nsq.HandlerFunc(wrapHandler(cfg.Topic, handler)))

	c := &Consumer{consumer: consumer, topic: cfg.Topic}

	if len(cfg.LookupdAddresses) > 0 {
		if err := consumer.ConnectToNSQLookupds(cfg.LookupdAddresses); err != nil {
			consumer.Stop()
			return nil, fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return c, nil
	}

	if err := consumer.ConnectToNSQD(cfg.NSQDAddress); err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return c, nil
}

func wrapHandler(topic string, handler MessageHandler) func(*nsq.Message) error {
	return func(message *nsq.Message) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		err := handler(ctx, message.Body)
		if err == nil {
			return nil
		}

		if retry.IsPermanent(err) {
			logger.Error("Dropping NSQ message",
				logger.String("topic", topic),
				logger.String("message_id", string(message.ID[:])),
				logger.ErrorField(err))
			return nil
		}

		logger.Warn("Failed to process NSQ message, requeueing",
			logger.String("topic", topic),
			logger.Int("attempts", int(message.Attempts)),
			logger.ErrorField(err))
		return err
	}
}

// UnmarshalMessage deserializes a JSON message into v
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return retry.Permanent(fmt.Errorf("failed to unmarshal message: %w", err))
	}
	return nil
}

// Stop stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
