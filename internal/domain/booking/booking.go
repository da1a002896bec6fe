package booking

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/pkg/domain"
)

// timeSlotPattern matches 24h "HH:MM" slots.
var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Address is the at-home service location for a booking.
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Booking is the aggregate root for the booking domain: one scheduled
// appointment between a client and a professional for a specific service.
type Booking struct {
	id             uuid.UUID
	clientID       uuid.UUID
	professionalID uuid.UUID
	serviceID      uuid.UUID
	status         BookingStatus

	date     time.Time
	timeSlot string
	address  Address
	notes    string

	// Amounts are captured at creation with the fee rate in effect and are
	// never recomputed, even if the configured rate later changes.
	totalAmountCents          int64
	platformFeeCents          int64
	professionalEarningsCents int64
	feePercent                int64

	completedAt *time.Time
	cancelledAt *time.Time

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a pending booking with the earnings split applied.
// totalAmountCents is the service's gross price.
func NewBooking(
	clientID, professionalID, serviceID uuid.UUID,
	date time.Time,
	timeSlot string,
	address Address,
	notes string,
	totalAmountCents, feePercent int64,
) (*Booking, error) {
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client ID is required")
	}
	if professionalID == uuid.Nil {
		return nil, domain.NewValidationError("professional ID is required")
	}
	if serviceID == uuid.Nil {
		return nil, domain.NewValidationError("service ID is required")
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date is required")
	}
	if !timeSlotPattern.MatchString(timeSlot) {
		return nil, domain.NewValidationError("time slot must be in HH:MM format")
	}
	if address.Line1 == "" || address.City == "" || address.State == "" || address.ZipCode == "" {
		return nil, domain.NewValidationError("complete address is required")
	}
	if totalAmountCents <= 0 {
		return nil, domain.NewValidationError("total amount must be positive")
	}
	if feePercent < 0 || feePercent > 100 {
		return nil, domain.NewValidationError("fee percent must be between 0 and 100")
	}

	split := CalculateSplit(totalAmountCents, feePercent)

	now := time.Now().UTC()
	return &Booking{
		id:                        uuid.New(),
		clientID:                  clientID,
		professionalID:            professionalID,
		serviceID:                 serviceID,
		status:                    StatusPending,
		date:                      date,
		timeSlot:                  timeSlot,
		address:                   address,
		notes:                     notes,
		totalAmountCents:          split.TotalAmountCents,
		platformFeeCents:          split.PlatformFeeCents,
		professionalEarningsCents: split.ProfessionalEarningsCents,
		feePercent:                feePercent,
		version:                   1,
		createdAt:                 now,
		updatedAt:                 now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, clientID, professionalID, serviceID uuid.UUID,
	status BookingStatus,
	date time.Time,
	timeSlot string,
	address Address,
	notes string,
	totalAmountCents, platformFeeCents, professionalEarningsCents, feePercent int64,
	completedAt, cancelledAt *time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                        id,
		clientID:                  clientID,
		professionalID:            professionalID,
		serviceID:                 serviceID,
		status:                    status,
		date:                      date,
		timeSlot:                  timeSlot,
		address:                   address,
		notes:                     notes,
		totalAmountCents:          totalAmountCents,
		platformFeeCents:          platformFeeCents,
		professionalEarningsCents: professionalEarningsCents,
		feePercent:                feePercent,
		completedAt:               completedAt,
		cancelledAt:               cancelledAt,
		version:                   version,
		createdAt:                 createdAt,
		updatedAt:                 updatedAt,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// ClientID returns the booking client's user ID.
func (b *Booking) ClientID() uuid.UUID { return b.clientID }

// ProfessionalID returns the professional's user ID.
func (b *Booking) ProfessionalID() uuid.UUID { return b.professionalID }

// ServiceID returns the booked service's ID.
func (b *Booking) ServiceID() uuid.UUID { return b.serviceID }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Date returns the scheduled date.
func (b *Booking) Date() time.Time { return b.date }

// TimeSlot returns the scheduled "HH:MM" slot.
func (b *Booking) TimeSlot() string { return b.timeSlot }

// Address returns the service address.
func (b *Booking) Address() Address { return b.address }

// Notes returns any free-text notes for the booking.
func (b *Booking) Notes() string { return b.notes }

// TotalAmountCents returns the gross price in cents.
func (b *Booking) TotalAmountCents() int64 { return b.totalAmountCents }

// PlatformFeeCents returns the marketplace commission in cents.
func (b *Booking) PlatformFeeCents() int64 { return b.platformFeeCents }

// ProfessionalEarningsCents returns the professional's payout in cents.
func (b *Booking) ProfessionalEarningsCents() int64 { return b.professionalEarningsCents }

// FeePercent returns the commission rate captured at creation.
func (b *Booking) FeePercent() int64 { return b.feePercent }

// CompletedAt returns the completion time, or nil.
func (b *Booking) CompletedAt() *time.Time { return b.completedAt }

// CancelledAt returns the cancellation time, or nil.
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// TransitionTo moves the booking to the target status when the state
// machine allows it. Permission checks live in AuthorizeTransition; this
// only enforces the table.
func (b *Booking) TransitionTo(target BookingStatus) error {
	if !b.status.CanTransitionTo(target) {
		return domain.NewInvalidStateError(string(b.status), string(target))
	}

	now := time.Now().UTC()
	b.status = target
	switch target {
	case StatusCompleted:
		b.completedAt = &now
	case StatusCancelled:
		b.cancelledAt = &now
	}
	b.updatedAt = now
	return nil
}

// UpdateNotes replaces the booking notes. Allowed while the booking is not
// terminal.
func (b *Booking) UpdateNotes(notes string) error {
	if b.status.IsTerminal() {
		return domain.NewInvalidStateError(string(b.status), string(b.status))
	}
	b.notes = notes
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
