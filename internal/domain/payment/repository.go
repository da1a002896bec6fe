package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Totals aggregates settled payment amounts.
type Totals struct {
	AmountCents               int64
	PlatformFeeCents          int64
	ProfessionalEarningsCents int64
	Count                     int64
}

// PaymentRepository defines persistence operations for settlement records.
// The store enforces at most one payment per booking with a unique index on
// booking_id.
type PaymentRepository interface {
	// FindByBookingID retrieves the payment for a booking, if settled.
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*Payment, error)

	// ExistsByBookingID reports whether a booking has already been settled.
	ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)

	// ListByProfessionalID retrieves a professional's settled payments,
	// newest first, optionally restricted to [from, to).
	ListByProfessionalID(ctx context.Context, professionalID uuid.UUID, from, to *time.Time) ([]*Payment, error)

	// SumAll aggregates every settled payment (admin dashboard).
	SumAll(ctx context.Context) (Totals, error)

	// Save persists a new payment record.
	Save(ctx context.Context, payment *Payment) error
}
