package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/events"
	"github.com/SergeyBogomolovv/food-dispatch/internal/ws"
	"github.com/segmentio/kafka-go"
)

type Broadcaster interface {
	Broadcast(topic string, payload []byte) int
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Hint отправляется websocket-подписчикам. Состояние клиенты затем перечитывают по HTTP.
type Hint struct {
	Event   string `json:"event"`
	OrderID string `json:"order_id"`
}

type kafkaHandler struct {
	dlq    messageWriter
	reader messageReader
	logger *slog.Logger
	hub    Broadcaster
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, hub Broadcaster) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.EventsTopic,
		MaxWait: cfg.ReaderMaxWait,

		// новая группа не переигрывает историю топика
		StartOffset: kafka.LastOffset,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, hub)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, hub Broadcaster) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: reader,
		dlq:    dlq,
		hub:    hub,
	}
}

// Consume раздаёт события заказов websocket-подписчикам до отмены ctx.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		eventsInProgress.Inc()
		start := time.Now()

		if err := h.handleEvent(m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				eventsInProgress.Dec()
				continue
			}
			eventsDLQ.Inc()
		}

		eventProcessingDuration.Observe(time.Since(start).Seconds())
		eventsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleEvent(m kafka.Message) error {
	e, err := events.Decode(m.Value)
	if err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	payload, err := json.Marshal(Hint{Event: string(e.Type), OrderID: e.OrderID})
	if err != nil {
		return err
	}

	var delivered int
	for _, topic := range hintTopics(e) {
		delivered += h.hub.Broadcast(topic, payload)
	}
	eventsConsumed.WithLabelValues(string(e.Type)).Inc()
	hintsDelivered.Add(float64(delivered))
	return nil
}

// hintTopics перечисляет, кому обновиться после события.
func hintTopics(e entities.Event) []string {
	topics := []string{ws.OrderTopic(e.OrderID)}
	if e.RestaurantID != "" {
		topics = append(topics, ws.RestaurantTopic(e.RestaurantID))
	}
	if e.DriverID != "" {
		topics = append(topics, ws.DriverTopic(e.DriverID))
	}
	if affectsPool(e) && e.City != "" {
		topics = append(topics, ws.CityTopic(strings.ToLower(e.City)))
	}
	return topics
}

// affectsPool сообщает, мог ли измениться пул доступных заказов города.
func affectsPool(e entities.Event) bool {
	switch e.Type {
	case entities.EventAssignmentClaimed, entities.EventAssignmentRejected:
		return true
	case entities.EventOrderStatusChanged:
		status := entities.OrderStatus(e.Status)
		return status.IsClaimable() || status == entities.StatusCancelled
	}
	return false
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
