package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/internal/domain/booking"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// Method is how a booking was settled. The marketplace currently settles
// everything in cash at the appointment.
type Method string

const MethodCash Method = "cash"

// Status is the settlement state of a payment record.
type Status string

const StatusCompleted Status = "completed"

// Payment is the immutable settlement record created when a booking reaches
// completed. Amounts mirror the booking's stored amounts exactly; nothing is
// recomputed here.
type Payment struct {
	id                        uuid.UUID
	bookingID                 uuid.UUID
	clientID                  uuid.UUID
	professionalID            uuid.UUID
	amountCents               int64
	platformFeeCents          int64
	professionalEarningsCents int64
	method                    Method
	status                    Status
	createdAt                 time.Time
}

// NewFromBooking builds the settlement record for a completed booking,
// copying its stored amounts.
func NewFromBooking(b *booking.Booking) (*Payment, error) {
	if b.Status() != booking.StatusCompleted {
		return nil, domain.NewInvalidStateError(b.Status().String(), booking.StatusCompleted.String())
	}

	return &Payment{
		id:                        uuid.New(),
		bookingID:                 b.ID(),
		clientID:                  b.ClientID(),
		professionalID:            b.ProfessionalID(),
		amountCents:               b.TotalAmountCents(),
		platformFeeCents:          b.PlatformFeeCents(),
		professionalEarningsCents: b.ProfessionalEarningsCents(),
		method:                    MethodCash,
		status:                    StatusCompleted,
		createdAt:                 time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Payment from persistence data (no validation).
func Reconstruct(
	id, bookingID, clientID, professionalID uuid.UUID,
	amountCents, platformFeeCents, professionalEarningsCents int64,
	method Method,
	status Status,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:                        id,
		bookingID:                 bookingID,
		clientID:                  clientID,
		professionalID:            professionalID,
		amountCents:               amountCents,
		platformFeeCents:          platformFeeCents,
		professionalEarningsCents: professionalEarningsCents,
		method:                    method,
		status:                    status,
		createdAt:                 createdAt,
	}
}

// --- Getters ---

func (p *Payment) ID() uuid.UUID                    { return p.id }
func (p *Payment) BookingID() uuid.UUID             { return p.bookingID }
func (p *Payment) ClientID() uuid.UUID              { return p.clientID }
func (p *Payment) ProfessionalID() uuid.UUID        { return p.professionalID }
func (p *Payment) AmountCents() int64               { return p.amountCents }
func (p *Payment) PlatformFeeCents() int64          { return p.platformFeeCents }
func (p *Payment) ProfessionalEarningsCents() int64 { return p.professionalEarningsCents }
func (p *Payment) Method() Method                   { return p.method }
func (p *Payment) Status() Status                   { return p.status }
func (p *Payment) CreatedAt() time.Time             { return p.createdAt }
