package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Message is the wire form of an event on the events topic.
type Message struct {
	ID           string             `json:"id"`
	Type         entities.EventType `json:"type"`
	OrderID      string             `json:"order_id"`
	CustomerID   string             `json:"customer_id,omitempty"`
	RestaurantID string             `json:"restaurant_id,omitempty"`
	DriverID     string             `json:"driver_id,omitempty"`
	City         string             `json:"city,omitempty"`
	Status       string             `json:"status,omitempty"`
	OccurredAt   time.Time          `json:"occurred_at"`
}

func Encode(e entities.Event) ([]byte, error) {
	return json.Marshal(Message(e))
}

func Decode(data []byte) (entities.Event, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return entities.Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if m.Type == "" || m.OrderID == "" {
		return entities.Event{}, fmt.Errorf("event without type or order id")
	}
	return entities.Event(m), nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events to kafka keyed by order id, so events of one
// order stay in one partition.
type Publisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return newPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(logger *slog.Logger, w messageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: w,
	}
}

func (p *Publisher) Notify(ctx context.Context, e entities.Event) error {
	value, err := Encode(e)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: value,
		Time:  e.OccurredAt,
	}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}
	p.logger.DebugContext(ctx, "event published", slog.String("type", string(e.Type)), slog.String("order_id", e.OrderID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
