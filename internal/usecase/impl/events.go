package impl

import (
	"context"
	"log/slog"

	deliverycontext "farmhub/internal/delivery/context"
	"farmhub/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent hands the event to the publisher. A failure is only logged;
// the request that produced the event has already succeeded.
func publishEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	name string,
	userID uuid.UUID,
	payload map[string]any,
) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Name:      name,
		UserID:    userID.String(),
		Payload:   payload,
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("event", name),
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}
