package telemetry

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/user-admin/internal"
	"github.com/frahmantamala/user-admin/internal/core/events"
)

// Client records structured audit events. Implementations are
// fire-and-forget: recording failures must never abort the operation that
// produced the event.
type Client interface {
	TrackEvent(ctx context.Context, name string, attributes map[string]string, metric *float64)
}

// BusClient publishes tracked events onto the in-process event bus.
type BusClient struct {
	bus    *events.EventBus
	logger *slog.Logger
}

func NewBusClient(bus *events.EventBus, logger *slog.Logger) *BusClient {
	return &BusClient{bus: bus, logger: logger}
}

func (c *BusClient) TrackEvent(ctx context.Context, name string, attributes map[string]string, metric *float64) {
	event := events.NewTrackingEvent(name, attributes, metric)
	if err := c.bus.Publish(ctx, event); err != nil {
		// swallowed: the administrative mutation already succeeded
		c.logger.Error("failed to publish tracking event", "event_type", name, "error", err)
		return
	}
	c.logger.Debug("tracked event",
		"event_type", name,
		"event_id", event.EventID(),
		"acting_user", internal.UsernameFromContext(ctx))
}
