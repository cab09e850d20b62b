package handler

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/loanhub/internal/pkg/constants"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	nsqpkg "github.com/piresc/loanhub/internal/pkg/nsq"
	"github.com/piresc/loanhub/services/notifications"
)

// NotificationHandler consumes domain events from NSQ
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	cfg            *models.Config
	nrApp          *newrelic.Application
	consumers      []*nsqpkg.Consumer
}

// NewNotificationHandler creates a new notification NSQ handler
func NewNotificationHandler(
	notificationUC notifications.NotificationUC,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
		nrApp:          nrApp,
	}
}

// Topics maps each consumed topic to its message handler
func (h *NotificationHandler) Topics() map[string]nsqpkg.MessageHandler {
	loanTopic := h.cfg.NSQ.LoanDecidedTopic
	if loanTopic == "" {
		loanTopic = constants.TopicLoanDecided
	}
	queryTopic := h.cfg.NSQ.QueryRespondedTopic
	if queryTopic == "" {
		queryTopic = constants.TopicQueryResponded
	}

	return map[string]nsqpkg.MessageHandler{
		loanTopic:  h.HandleLoanDecided,
		queryTopic: h.HandleQueryResponded,
	}
}

// InitNSQConsumers connects one consumer per topic
func (h *NotificationHandler) InitNSQConsumers() error {
	channel := h.cfg.NSQ.Channel
	if channel == "" {
		channel = constants.ChannelNotifier
	}

	for topic, handle := range h.Topics() {
		consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
			Topic:            topic,
			Channel:          channel,
			NSQDAddress:      h.cfg.NSQ.Address,
			LookupdAddresses: h.cfg.NSQ.LookupdAddresses,
		}, handle)
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to create consumer for %s: %w", topic, err)
		}
		h.consumers = append(h.consumers, consumer)

		logger.Info("Consuming NSQ topic",
			logger.String("topic", topic),
			logger.String("channel", channel))
	}
	return nil
}

// Stop stops every consumer
func (h *NotificationHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

// HandleLoanDecided processes a loan.decided message
func (h *NotificationHandler) HandleLoanDecided(ctx context.Context, body []byte) error {
	txn := h.nrApp.StartTransaction("NSQ.Notifications.HandleLoanDecided")
	defer txn.End()
	ctx = newrelic.NewContext(ctx, txn)

	var event models.LoanDecidedEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		txn.NoticeError(err)
		return err
	}

	if err := h.notificationUC.NotifyLoanDecided(ctx, &event); err != nil {
		txn.NoticeError(err)
		logger.ErrorCtx(ctx, "Error handling loan decided event",
			logger.String("loan_id", event.LoanID.String()),
			logger.Err(err))
		return err
	}
	return nil
}

// HandleQueryResponded processes a query.responded message
func (h *NotificationHandler) HandleQueryResponded(ctx context.Context, body []byte) error {
	txn := h.nrApp.StartTransaction("NSQ.Notifications.HandleQueryResponded")
	defer txn.End()
	ctx = newrelic.NewContext(ctx, txn)

	var event models.QueryRespondedEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		txn.NoticeError(err)
		return err
	}

	if err := h.notificationUC.NotifyQueryResponded(ctx, &event); err != nil {
		txn.NoticeError(err)
		logger.ErrorCtx(ctx, "Error handling query responded event",
			logger.String("query_id", event.QueryID.String()),
			logger.Err(err))
		return err
	}
	return nil
}
