// Package event publishes user mutation notifications to the external
// message channel.
package event

import (
	"context"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/userhub/user-service/internal/logger"
	"github.com/userhub/user-service/internal/model"
)

// json is the shared serializer instance; jsoniter configs are
// immutable and safe for concurrent use.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ model.EventPublisher = (*Publisher)(nil)

// Publisher serializes events and hands them to a MessageProducer.
type Publisher struct {
	producer model.MessageProducer
	logger   *logger.Logger
	marshal  func(v any) ([]byte, error)
}

// envelope is the outbound message body: exactly two string keys, the
// event tag and the user payload (full JSON document or decimal id).
type envelope struct {
	Event string `json:"event"`
	User  string `json:"user"`
}

func NewPublisher(producer model.MessageProducer, logger *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		marshal:  json.Marshal,
	}
}

// PublishUser publishes the event with the full serialized user. If the
// user cannot be serialized the notification is degraded, not aborted:
// the decimal id is published instead.
func (p *Publisher) PublishUser(ctx context.Context, event model.Event, user model.User) error {
	payload, err := p.marshal(user)
	if err != nil {
		p.logger.Warn("failed to serialize user for event, representing user by id instead",
			"error", err,
			"event", event,
			"user_id", user.ID)
		return p.PublishID(ctx, event, user.ID)
	}

	return p.publish(ctx, event, string(payload))
}

// PublishID publishes the event carrying only the user's decimal id.
func (p *Publisher) PublishID(ctx context.Context, event model.Event, id uint64) error {
	return p.publish(ctx, event, strconv.FormatUint(id, 10))
}

func (p *Publisher) publish(ctx context.Context, event model.Event, payload string) error {
	message, err := json.Marshal(envelope{Event: string(event), User: payload})
	if err != nil {
		return fmt.Errorf("failed to serialize event message: %w", err)
	}

	if err := p.producer.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send event message: %w", err)
	}

	p.logger.Info("event sent to message queue", "event", event)

	return nil
}
