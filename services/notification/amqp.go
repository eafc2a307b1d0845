package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flightly/models"
	"flightly/utils"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp.Channel the publisher needs.
type publishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes booking events as persistent JSON messages.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  publishChannel
	exchange string
}

// NewAMQPPublisher dials the broker, retrying while it starts, and declares the
// durable fanout exchange.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	logger := utils.GetLogger()

	const maxRetries = 5
	var conn *amqp.Connection
	var err error
	for i := 1; i <= maxRetries; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.Warn("AMQP broker not reachable, retrying", zap.Int("attempt", i), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	if err := ch.ExchangeDeclare(BookingExchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", BookingExchange, err)
	}
	logger.Info("AMQP publisher ready", zap.String("exchange", BookingExchange))

	return &AMQPPublisher{conn: conn, channel: ch, exchange: BookingExchange}, nil
}

func (p *AMQPPublisher) PublishBookingCommitted(_ context.Context, event models.BookingEvent) error {
	if event.Type == "" {
		event.Type = EventBookingCommitted
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}
	err = p.channel.Publish(p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    event.OccurredAt,
		MessageId:    event.Booking.BookingID,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking %s: %w", event.Booking.BookingID, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// IsClosed reports whether the broker connection has gone away.
func (p *AMQPPublisher) IsClosed() bool {
	return p.conn == nil || p.conn.IsClosed()
}
