package events

import (
	"time"

	"github.com/google/uuid"
)

// Kafka topics.
const (
	TopicBookingEvents = "booking.events"
)

// Event types published on booking.events.
const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	BookingDeleted       = "booking.deleted"
	PaymentSettled       = "payment.settled"
)

// BookingCreatedEvent is published when a client books a slot.
type BookingCreatedEvent struct {
	BookingID        uuid.UUID `json:"booking_id"`
	ClientID         uuid.UUID `json:"client_id"`
	ProfessionalID   uuid.UUID `json:"professional_id"`
	ServiceID        uuid.UUID `json:"service_id"`
	Date             time.Time `json:"date"`
	TimeSlot         string    `json:"time_slot"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent is published after every successful transition.
type BookingStatusChangedEvent struct {
	BookingID      uuid.UUID `json:"booking_id"`
	ClientID       uuid.UUID `json:"client_id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	RequestedBy    uuid.UUID `json:"requested_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// BookingDeletedEvent is published when a booking record is hard-removed.
type BookingDeletedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	DeletedBy  uuid.UUID `json:"deleted_by"`
	LastStatus string    `json:"last_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentSettledEvent is published when the settlement trigger records a
// payment for a completed booking.
type PaymentSettledEvent struct {
	PaymentID                 uuid.UUID `json:"payment_id"`
	BookingID                 uuid.UUID `json:"booking_id"`
	ClientID                  uuid.UUID `json:"client_id"`
	ProfessionalID            uuid.UUID `json:"professional_id"`
	AmountCents               int64     `json:"amount_cents"`
	PlatformFeeCents          int64     `json:"platform_fee_cents"`
	ProfessionalEarningsCents int64     `json:"professional_earnings_cents"`
	OccurredAt                time.Time `json:"occurred_at"`
}
