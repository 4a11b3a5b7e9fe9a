package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends booking events to a durable RabbitMQ queue.
// Every publish dials its own connection; bookings are rare enough that pooling is not worth the reconnect logic.
type AMQPPublisher struct {
	url     string
	queue   string
	timeout time.Duration
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAMQPPublisher(cfg config.BrokerConfig, clk clock.Clock, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		url:     cfg.URL,
		queue:   cfg.Queue,
		timeout: cfg.PublishTimeout,
		clock:   clk,
		logger:  logger,
	}
}

func (p *AMQPPublisher) PublishBookingConfirmed(ctx context.Context, event shared.BookingConfirmedEvent) error {
	msg, err := newPublishing(event, p.clock.Now())
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.timeout)})
	if err != nil {
		return errs.Wrap(err, "amqp dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "amqp open channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "amqp declare queue %s", p.queue)
	}

	// default exchange, routing key = queue name
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrapf(err, "amqp publish to %s", p.queue)
	}

	p.logger.Debug("booking event published", "queue", p.queue, "booking_id", event.BookingID)
	return nil
}

func newPublishing(event shared.BookingConfirmedEvent, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, errs.Wrap(err, "marshal booking event")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		Type:         "booking.confirmed",
		Timestamp:    now.UTC(),
		Body:         body,
	}, nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) PublishBookingConfirmed(_ context.Context, event shared.BookingConfirmedEvent) error {
	p.logger.Debug("booking event dropped, no broker configured", "booking_id", event.BookingID)
	return nil
}
