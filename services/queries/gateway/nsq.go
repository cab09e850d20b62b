package gateway

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/constants"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

// PublishQueryResponded publishes a query response to NSQ
func (g *QueryGW) PublishQueryResponded(ctx context.Context, event *models.QueryRespondedEvent) error {
	topic := g.cfg.NSQ.QueryRespondedTopic
	if topic == "" {
		topic = constants.TopicQueryResponded
	}

	return nrpkg.WithExternalSegment(ctx, "go-nsq", "publish", "nsq://"+topic, func() error {
		return g.publisher.Publish(ctx, topic, event)
	})
}
