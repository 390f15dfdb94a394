// Package pubsub publishes marketplace events to a message queue.
package pubsub

import (
	"context"
	"log/slog"

	"teka/config"
	"teka/internal/domain/constants"
	"teka/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no broker is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.MarketplaceEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled", slog.String("type", event.Type))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// eventAttributes let subscriptions filter on event type and recipient.
func eventAttributes(event *service.MarketplaceEvent) map[string]string {
	attributes := map[string]string{
		"type":     event.Type,
		"actor_id": event.ActorID,
	}
	optional := map[string]string{
		"recipient_id": event.RecipientID,
		"product_id":   event.ProductID,
		"request_id":   event.RequestID,
	}
	for key, value := range optional {
		if value != "" {
			attributes[key] = value
		}
	}

	return attributes
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. An empty
// provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		params.Logger.Info("Marketplace event publishing disabled")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := newBrokerPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing marketplace events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}
