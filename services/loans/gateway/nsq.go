package gateway

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/constants"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

// PublishLoanDecided publishes a loan decision to NSQ
func (g *LoanGW) PublishLoanDecided(ctx context.Context, event *models.LoanDecidedEvent) error {
	topic := g.cfg.NSQ.LoanDecidedTopic
	if topic == "" {
		topic = constants.TopicLoanDecided
	}

	return nrpkg.WithExternalSegment(ctx, "go-nsq", "publish", "nsq://"+topic, func() error {
		return g.publisher.Publish(ctx, topic, event)
	})
}
