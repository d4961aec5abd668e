package producer

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Event is one domain event bound for the checkout topic. Type and
// AggregateType travel as headers so consumers can route without decoding
// the payload.
type Event struct {
	Key           string
	Type          string
	AggregateType string
	Payload       []byte
}

//go:generate mockgen -source=publisher.go -destination=../../../mock/producer/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg := kafka.Message{
		Key:   []byte(event.Key),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
