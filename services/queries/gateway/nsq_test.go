package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topics []string
	bodies [][]byte
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	p.topics = append(p.topics, topic)
	p.bodies = append(p.bodies, body)
	return nil
}

func TestPublishQueryResponded(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewQueryGW(pub, &models.Config{})

	event := &models.QueryRespondedEvent{QueryID: uuid.New(), UserID: uuid.New(), Query: "need info", Response: "see FAQ"}
	require.NoError(t, gw.PublishQueryResponded(context.Background(), event))

	require.Len(t, pub.topics, 1)
	assert.Equal(t, "query.responded", pub.topics[0])

	var got models.QueryRespondedEvent
	require.NoError(t, json.Unmarshal(pub.bodies[0], &got))
	assert.Equal(t, event.QueryID, got.QueryID)
	assert.Equal(t, "see FAQ", got.Response)
}

func TestPublishQueryResponded_ConfiguredTopic(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewQueryGW(pub, &models.Config{NSQ: models.NSQConfig{QueryRespondedTopic: "queries.v2"}})

	require.NoError(t, gw.PublishQueryResponded(context.Background(), &models.QueryRespondedEvent{}))
	assert.Equal(t, []string{"queries.v2"}, pub.topics)
}

func TestPublishQueryResponded_Error(t *testing.T) {
	gw := NewQueryGW(&recordingPublisher{err: errors.New("nsqd unreachable")}, &models.Config{})
	assert.EqualError(t, gw.PublishQueryResponded(context.Background(), &models.QueryRespondedEvent{}), "nsqd unreachable")
}
