// Package kafka publishes settlement events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/mmynk/moneysplitter/internal/events"
)

// Ensure Publisher implements events.Publisher
var _ events.Publisher = (*Publisher)(nil)

type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to topic on the given brokers.
// Messages are keyed by ledger ID so one ledger's events stay ordered.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishLedgerSettled writes one LedgerSettled message.
func (p *Publisher) PublishLedgerSettled(ctx context.Context, event events.LedgerSettled) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish ledger settled event: %w", err)
	}
	return nil
}

// Close flushes pending writes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func newMessage(event events.LedgerSettled) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.LedgerID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.TypeLedgerSettled)},
		},
	}, nil
}
