package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/logger"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher emits booking events keyed by property id, so one property's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger logger.Logger) *KafkaPublisher {
	p := &KafkaPublisher{topic: topic, logger: logger}
	if len(brokers) == 0 {
		logger.Warn("kafka brokers are empty, booking events disabled")
		return p
	}

	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion:   p.completed,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(p.writerError),
	}

	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.BookingEvent) {
	if p.writer == nil {
		p.logger.Debug("booking event skipped (publisher disabled)",
			logger.String("type", string(event.Type)),
			logger.Int64("booking_id", event.BookingID),
		)
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode booking event",
			logger.Int64("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PropertyID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err = p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("topic", p.topic),
			logger.Int64("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaPublisher) completed(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	p.logger.Error("booking events not delivered",
		logger.String("topic", p.topic),
		logger.Int("count", len(messages)),
		logger.String("error", err.Error()),
	)
}

func (p *KafkaPublisher) writerError(msg string, args ...any) {
	p.logger.Error("kafka writer error", logger.String("detail", fmt.Sprintf(msg, args...)))
}
