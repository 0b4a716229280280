package event

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/userhub/user-service/internal/logger"
	"github.com/userhub/user-service/internal/model"
)

var _ model.MessageProducer = (*KafkaProducer)(nil)

// KafkaProducer writes event messages to a single topic. The writer
// runs in async mode: Send returns after local hand-off and delivery
// outcomes arrive on the completion callback, which only logs. There is
// no retry beyond what the writer itself performs and no delivery
// guarantee surfaced to callers.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewKafkaProducer(brokers []string, topic string, logger *logger.Logger) *KafkaProducer {
	p := &KafkaProducer{
		logger: logger,
	}

	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion:             p.logDelivery,
	}

	return p
}

func (p *KafkaProducer) Send(ctx context.Context, message []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{Value: message})
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

func (p *KafkaProducer) logDelivery(messages []kafka.Message, err error) {
	if err != nil {
		p.logger.Error("failed to deliver event messages", "error", err, "count", len(messages))
		return
	}

	p.logger.Info("event messages delivered", "count", len(messages))
}
