package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/beautygo/beautygo-api/pkg/kafka"
)

// NotificationConsumer listens to booking events and dispatches notifications
// to the affected parties. Delivery is log-based for now; the handler shape
// leaves room for push or email channels.
type NotificationConsumer struct {
	consumer *kafka.Consumer
	logger   *zap.Logger
}

// NewNotificationConsumer creates a new NotificationConsumer.
func NewNotificationConsumer(brokers []string, groupID string, logger *zap.Logger) *NotificationConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &NotificationConsumer{
		consumer: consumer,
		logger:   logger,
	}
}

// Start begins consuming booking events. This blocks until the context is cancelled.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *NotificationConsumer) Close() error {
	return c.consumer.Close()
}

func (c *NotificationConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case BookingCreated:
		return c.handleBookingCreated(cloudEvent)
	case BookingStatusChanged:
		return c.handleStatusChanged(cloudEvent)
	case PaymentSettled:
		return c.handlePaymentSettled(cloudEvent)
	case BookingDeleted:
		return nil // Nothing to notify
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *NotificationConsumer) handleBookingCreated(cloudEvent kafka.CloudEvent) error {
	var evt BookingCreatedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingCreatedEvent data", zap.Error(err))
		return nil
	}

	c.logger.Info("notify professional: new booking request",
		zap.String("booking_id", evt.BookingID.String()),
		zap.String("professional_id", evt.ProfessionalID.String()),
		zap.String("date", evt.Date.Format("2006-01-02")),
		zap.String("time_slot", evt.TimeSlot),
	)
	return nil
}

func (c *NotificationConsumer) handleStatusChanged(cloudEvent kafka.CloudEvent) error {
	var evt BookingStatusChangedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingStatusChangedEvent data", zap.Error(err))
		return nil
	}

	// The party who did not request the change is the one to notify.
	recipient := evt.ClientID
	if evt.RequestedBy == evt.ClientID {
		recipient = evt.ProfessionalID
	}

	c.logger.Info("notify user: booking status changed",
		zap.String("booking_id", evt.BookingID.String()),
		zap.String("recipient_id", recipient.String()),
		zap.String("from_status", evt.FromStatus),
		zap.String("to_status", evt.ToStatus),
	)
	return nil
}

func (c *NotificationConsumer) handlePaymentSettled(cloudEvent kafka.CloudEvent) error {
	var evt PaymentSettledEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse PaymentSettledEvent data", zap.Error(err))
		return nil
	}

	c.logger.Info("notify professional: earnings settled",
		zap.String("payment_id", evt.PaymentID.String()),
		zap.String("booking_id", evt.BookingID.String()),
		zap.Int64("professional_earnings_cents", evt.ProfessionalEarningsCents),
	)
	return nil
}
