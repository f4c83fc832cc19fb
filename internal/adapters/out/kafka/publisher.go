// Package kafka publishes committed order and delivery status changes to
// Kafka topics as JSON messages keyed by aggregate id.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Topics struct {
	OrderStatusChanged    string
	DeliveryStatusChanged string
}

type Publisher struct {
	w      messageWriter
	topics Topics
}

var _ ports.EventPublisher = (*Publisher)(nil)

// BatchTimeout bounds how long a status change waits for the writer to fill a
// batch. Events are written from the request path, one at a time.
const BatchTimeout = 10 * time.Millisecond

func NewPublisher(brokers []string, topics Topics) *Publisher {
	return newPublisherWithWriter(newWriter(brokers), topics)
}

func newWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           BatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

func newPublisherWithWriter(w messageWriter, topics Topics) *Publisher {
	return &Publisher{w: w, topics: topics}
}

func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	return p.publish(ctx, p.topics.OrderStatusChanged, event.OrderID, event)
}

func (p *Publisher) PublishDeliveryStatusChanged(ctx context.Context, event ports.DeliveryStatusChanged) error {
	return p.publish(ctx, p.topics.DeliveryStatusChanged, event.DeliveryID, event)
}

// publish keys messages by aggregate id so one aggregate's changes stay on
// one partition and keep their order.
func (p *Publisher) publish(ctx context.Context, topic, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	if err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		return errors.Wrapf(err, "kafka publish to %s", topic)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

var _ ports.EventPublisher = NopPublisher{}

func (NopPublisher) PublishOrderStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}

func (NopPublisher) PublishDeliveryStatusChanged(context.Context, ports.DeliveryStatusChanged) error {
	return nil
}
