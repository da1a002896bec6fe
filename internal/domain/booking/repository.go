package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for booking aggregates.
//
// The store guarantees slot exclusivity with a partial unique index on
// (professional_id, date, time_slot) restricted to active statuses;
// ExistsActiveSlot is the cheap pre-check, Save maps the index violation to
// a conflict for the racing writer.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ExistsActiveSlot reports whether a non-terminal booking occupies the
	// professional's slot at the given date and time.
	ExistsActiveSlot(ctx context.Context, professionalID uuid.UUID, date time.Time, timeSlot string) (bool, error)

	// FindByClientID retrieves bookings made by a client, optionally
	// filtered by status, with pagination.
	FindByClientID(ctx context.Context, clientID uuid.UUID, status *BookingStatus, page, limit int) ([]*Booking, int64, error)

	// FindByProfessionalID retrieves bookings assigned to a professional,
	// optionally filtered by status, with pagination.
	FindByProfessionalID(ctx context.Context, professionalID uuid.UUID, status *BookingStatus, page, limit int) ([]*Booking, int64, error)

	// ListAll retrieves all bookings with pagination (admin).
	ListAll(ctx context.Context, status *BookingStatus, page, limit int) ([]*Booking, int64, error)

	// CountByStatus returns booking counts grouped by status (admin).
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// CountCreatedBetween returns how many bookings were created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error

	// Delete permanently removes a booking record.
	Delete(ctx context.Context, id uuid.UUID) error
}
