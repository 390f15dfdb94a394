package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"teka/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends marketplace events to a Cloud Pub/Sub topic.
// Events of one conversation share an ordering key so subscribers see
// messages in the order they were sent.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing marketplace events to Cloud Pub/Sub", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// orderingKey groups events that must be delivered in sequence.
// Events outside a conversation are unordered.
func orderingKey(event *service.MarketplaceEvent) string {
	if event.ConversationID == "" {
		return ""
	}

	return "conversation:" + event.ConversationID
}

func newMessage(event *service.MarketplaceEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: orderingKey(event),
	}, nil
}

// Publish blocks until the topic acknowledges the event.
func (p *googlePublisher) Publish(ctx context.Context, event *service.MarketplaceEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		if msg.OrderingKey != "" {
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Marketplace event published",
		slog.String("type", event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
