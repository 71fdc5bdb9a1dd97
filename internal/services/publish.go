package services

import (
	"context"

	"quickchat/internal/events"
	"quickchat/pkg/logger"
)

// publish announces a stored message to live subscribers. The message is
// already persisted, so failures are only logged.
func publish(ctx context.Context, bus events.Bus, log *logger.Logger, eventType events.EventType, aggregateID, messageID string, message any) {
	if bus == nil {
		return
	}
	env, err := events.NewEnvelope(eventType, aggregateID, messageID, message)
	if err == nil {
		err = bus.Publish(ctx, env)
	}
	if err != nil {
		log.Warnf("failed to publish %s for %s: %v", eventType, aggregateID, err)
	}
}
