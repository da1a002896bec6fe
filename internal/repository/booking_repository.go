package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	bookingDomain "github.com/beautygo/beautygo-api/internal/domain/booking"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// pgUniqueViolation is the PostgreSQL error code for unique index violations.
const pgUniqueViolation = "23505"

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID                  uuid.UUID `gorm:"type:uuid;index;not null"`
	ProfessionalID            uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID                 uuid.UUID `gorm:"type:uuid;not null"`
	Status                    string    `gorm:"not null;size:30;index"`
	Date                      time.Time `gorm:"type:date;not null"`
	TimeSlot                  string    `gorm:"not null;size:5"`
	Address                   string    `gorm:"not null;size:255"`
	City                      string    `gorm:"not null;size:100"`
	State                     string    `gorm:"not null;size:50"`
	ZipCode                   string    `gorm:"not null;size:20"`
	Notes                     string    `gorm:"size:1000"`
	TotalAmountCents          int64     `gorm:"not null"`
	PlatformFeeCents          int64     `gorm:"not null"`
	ProfessionalEarningsCents int64     `gorm:"not null"`
	FeePercent                int64     `gorm:"not null;default:20"`
	CompletedAt               *time.Time
	CancelledAt               *time.Time
	Version                   int64     `gorm:"not null;default:1"`
	CreatedAt                 time.Time `gorm:"not null"`
	UpdatedAt                 time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model), nil
}

// ExistsActiveSlot reports whether a non-terminal booking occupies the slot.
func (r *GormBookingRepository) ExistsActiveSlot(ctx context.Context, professionalID uuid.UUID, date time.Time, timeSlot string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("professional_id = ? AND date = ? AND time_slot = ? AND status IN ?",
			professionalID, date, timeSlot, activeStatusStrings()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active slot: %w", err)
	}
	return count > 0, nil
}

// FindByClientID retrieves bookings made by a client with pagination.
func (r *GormBookingRepository) FindByClientID(ctx context.Context, clientID uuid.UUID, status *bookingDomain.BookingStatus, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	return r.findWhere(ctx, "client_id = ?", clientID, status, page, limit)
}

// FindByProfessionalID retrieves bookings assigned to a professional with pagination.
func (r *GormBookingRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID, status *bookingDomain.BookingStatus, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	return r.findWhere(ctx, "professional_id = ?", professionalID, status, page, limit)
}

// ListAll retrieves all bookings with pagination (admin).
func (r *GormBookingRepository) ListAll(ctx context.Context, status *bookingDomain.BookingStatus, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	return r.findWhere(ctx, "", nil, status, page, limit)
}

func (r *GormBookingRepository) findWhere(ctx context.Context, cond string, arg interface{}, status *bookingDomain.BookingStatus, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{})
	if cond != "" {
		query = query.Where(cond, arg)
	}
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := query.
		Order("date ASC, time_slot ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings, total, nil
}

// CountByStatus returns booking counts grouped by status (admin).
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// CountCreatedBetween returns how many bookings were created in [from, to).
func (r *GormBookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by creation time: %w", err)
	}
	return count, nil
}

// Save persists a new booking. A violation of the active-slot unique index
// surfaces as a conflict so the racing creator gets the same answer as one
// who lost the pre-check.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("this time slot is already booked")
		}
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	// Only update if the version matches (current version - 1, since
	// IncrementVersion was called before persisting).
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"notes":        model.Notes,
			"completed_at": model.CompletedAt,
			"cancelled_at": model.CancelledAt,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// Delete permanently removes a booking record.
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", id.String())
	}
	return nil
}

// --- Helpers ---

func activeStatusStrings() []string {
	active := bookingDomain.ActiveStatuses()
	out := make([]string, len(active))
	for i, s := range active {
		out[i] = s.String()
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	addr := bk.Address()
	return &BookingModel{
		ID:                        bk.ID(),
		ClientID:                  bk.ClientID(),
		ProfessionalID:            bk.ProfessionalID(),
		ServiceID:                 bk.ServiceID(),
		Status:                    string(bk.Status()),
		Date:                      bk.Date(),
		TimeSlot:                  bk.TimeSlot(),
		Address:                   addr.Line1,
		City:                      addr.City,
		State:                     addr.State,
		ZipCode:                   addr.ZipCode,
		Notes:                     bk.Notes(),
		TotalAmountCents:          bk.TotalAmountCents(),
		PlatformFeeCents:          bk.PlatformFeeCents(),
		ProfessionalEarningsCents: bk.ProfessionalEarningsCents(),
		FeePercent:                bk.FeePercent(),
		CompletedAt:               bk.CompletedAt(),
		CancelledAt:               bk.CancelledAt(),
		Version:                   bk.Version(),
		CreatedAt:                 bk.CreatedAt(),
		UpdatedAt:                 bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.ClientID,
		m.ProfessionalID,
		m.ServiceID,
		bookingDomain.BookingStatus(m.Status),
		m.Date,
		m.TimeSlot,
		bookingDomain.Address{
			Line1:   m.Address,
			City:    m.City,
			State:   m.State,
			ZipCode: m.ZipCode,
		},
		m.Notes,
		m.TotalAmountCents,
		m.PlatformFeeCents,
		m.ProfessionalEarningsCents,
		m.FeePercent,
		m.CompletedAt,
		m.CancelledAt,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
