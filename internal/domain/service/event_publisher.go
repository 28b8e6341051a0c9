package service

import (
	"context"
)

// Event names published by the API.
const (
	EventUserRegistered = "user.registered"
	EventFarmOnboarded  = "farm.onboarded"
)

// DomainEvent is a fact about the farm domain handed to downstream consumers.
type DomainEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	Name      string         `json:"name"`
	UserID    string         `json:"user_id"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
