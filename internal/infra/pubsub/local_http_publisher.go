package pubsub

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 30 * time.Second
	localSubscription   = "projects/local/subscriptions/marketplace-events"
)

// localHTTPPublisher delivers events the way a Pub/Sub push subscription
// would, so a development consumer can run without a broker.
type localHTTPPublisher struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// PushMessage is the body of a Pub/Sub push delivery.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: resty.New().
			SetTimeout(localPublishTimeout).
			SetHeader("Content-Type", "application/json"),
		logger: logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.MarketplaceEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.WithStack(err)
	}

	push := PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.Data)
	push.Message.Attributes = msg.Attributes
	push.Message.OrderingKey = msg.OrderingKey
	push.Message.MessageID = id.String()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	req := p.client.R().SetContext(ctx).SetBody(push)
	if event.RequestID != "" {
		req.SetHeader(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.Wrapf(err, "push %s", event.Type)
	}
	if resp.IsError() {
		return errors.Errorf("push %s: event sink answered %d", event.Type, resp.StatusCode())
	}

	p.logger.DebugContext(ctx, "Marketplace event pushed",
		slog.String("type", event.Type),
		slog.String("message_id", push.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
