package model

import "context"

// Event tags a user mutation for the outbound notification channel.
type Event string

const (
	EventUserCreated Event = "USER_CREATED"
	EventUserUpdated Event = "USER_UPDATED"
	EventUserDeleted Event = "USER_DELETED"
)

// EventPublisher emits best-effort notifications about user mutations.
// Delivery is at-most-once; a returned error means the hand-off itself
// failed, never that the broker rejected the message.
type EventPublisher interface {
	// PublishUser publishes the event with the full serialized user as
	// payload, degrading to the user's ID if serialization fails.
	PublishUser(ctx context.Context, event Event, user User) error
	// PublishID publishes the event with only the decimal ID as payload.
	PublishID(ctx context.Context, event Event, id uint64) error
}

// MessageProducer hands a serialized message to the external channel.
type MessageProducer interface {
	Send(ctx context.Context, message []byte) error
}
