package gateway

import (
	"context"
	"log/slog"

	"auth-gate/internal/domain"
	"auth-gate/metrics"
)

// StreamPublisher is the slice of the Redis driver the event gateway
// needs.
type StreamPublisher interface {
	PublishEvent(ctx context.Context, stream string, event *domain.UnauthorizedEvent) (string, error)
}

// EventGateway implements domain.EventPublisher over a Redis Stream.
// Delivery is best-effort; the stream message id is logged as the
// delivery confirmation.
type EventGateway struct {
	publisher StreamPublisher
	stream    string
	logger    *slog.Logger
}

// NewEventGateway creates an event gateway publishing to stream.
func NewEventGateway(publisher StreamPublisher, stream string, logger *slog.Logger) *EventGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventGateway{publisher: publisher, stream: stream, logger: logger}
}

// Publish validates and appends the event to the stream.
func (g *EventGateway) Publish(ctx context.Context, event *domain.UnauthorizedEvent) (string, error) {
	if err := event.Validate(); err != nil {
		metrics.RecordEventPublish("invalid")
		return "", err
	}

	messageID, err := g.publisher.PublishEvent(ctx, g.stream, event)
	if err != nil {
		metrics.RecordEventPublish("error")
		g.logger.ErrorContext(ctx, "event publish failed",
			"stream", g.stream,
			"event_id", event.ID,
			"error", err)
		return "", err
	}

	metrics.RecordEventPublish("ok")
	g.logger.InfoContext(ctx, "event published",
		"stream", g.stream,
		"event_id", event.ID,
		"message_id", messageID)
	return messageID, nil
}
