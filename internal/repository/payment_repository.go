package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentDomain "github.com/beautygo/beautygo-api/internal/domain/payment"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// PaymentModel is the GORM model for the payments table.
type PaymentModel struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID                 uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ClientID                  uuid.UUID `gorm:"type:uuid;index;not null"`
	ProfessionalID            uuid.UUID `gorm:"type:uuid;index;not null"`
	AmountCents               int64     `gorm:"not null"`
	PlatformFeeCents          int64     `gorm:"not null"`
	ProfessionalEarningsCents int64     `gorm:"not null"`
	Method                    string    `gorm:"not null;size:20"`
	Status                    string    `gorm:"not null;size:20"`
	CreatedAt                 time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PaymentModel) TableName() string {
	return "payments"
}

// GormPaymentRepository is the GORM-based implementation of PaymentRepository.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByBookingID retrieves the payment for a booking, if settled.
func (r *GormPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*paymentDomain.Payment, error) {
	var model PaymentModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Payment", bookingID.String())
		}
		return nil, fmt.Errorf("failed to find payment by booking ID: %w", err)
	}
	return toDomainPayment(&model), nil
}

// ExistsByBookingID reports whether a booking has already been settled.
func (r *GormPaymentRepository) ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentModel{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check payment existence: %w", err)
	}
	return count > 0, nil
}

// ListByProfessionalID retrieves a professional's settled payments, optionally
// bounded to [from, to).
func (r *GormPaymentRepository) ListByProfessionalID(ctx context.Context, professionalID uuid.UUID, from, to *time.Time) ([]*paymentDomain.Payment, error) {
	query := r.db.WithContext(ctx).Where("professional_id = ?", professionalID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	var models []PaymentModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*paymentDomain.Payment, len(models))
	for i := range models {
		payments[i] = toDomainPayment(&models[i])
	}
	return payments, nil
}

// SumAll aggregates every settled payment.
func (r *GormPaymentRepository) SumAll(ctx context.Context) (paymentDomain.Totals, error) {
	var row struct {
		AmountCents               int64
		PlatformFeeCents          int64
		ProfessionalEarningsCents int64
		Count                     int64
	}
	err := r.db.WithContext(ctx).Model(&PaymentModel{}).
		Select("COALESCE(SUM(amount_cents), 0) as amount_cents, " +
			"COALESCE(SUM(platform_fee_cents), 0) as platform_fee_cents, " +
			"COALESCE(SUM(professional_earnings_cents), 0) as professional_earnings_cents, " +
			"COUNT(*) as count").
		Scan(&row).Error
	if err != nil {
		return paymentDomain.Totals{}, fmt.Errorf("failed to sum payments: %w", err)
	}
	return paymentDomain.Totals{
		AmountCents:               row.AmountCents,
		PlatformFeeCents:          row.PlatformFeeCents,
		ProfessionalEarningsCents: row.ProfessionalEarningsCents,
		Count:                     row.Count,
	}, nil
}

// Save persists a new payment. A second settlement attempt for the same
// booking hits the unique index and surfaces as a conflict.
func (r *GormPaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	model := &PaymentModel{
		ID:                        p.ID(),
		BookingID:                 p.BookingID(),
		ClientID:                  p.ClientID(),
		ProfessionalID:            p.ProfessionalID(),
		AmountCents:               p.AmountCents(),
		PlatformFeeCents:          p.PlatformFeeCents(),
		ProfessionalEarningsCents: p.ProfessionalEarningsCents(),
		Method:                    string(p.Method()),
		Status:                    string(p.Status()),
		CreatedAt:                 p.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("booking has already been settled")
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func toDomainPayment(m *PaymentModel) *paymentDomain.Payment {
	return paymentDomain.Reconstruct(
		m.ID,
		m.BookingID,
		m.ClientID,
		m.ProfessionalID,
		m.AmountCents,
		m.PlatformFeeCents,
		m.ProfessionalEarningsCents,
		paymentDomain.Method(m.Method),
		paymentDomain.Status(m.Status),
		m.CreatedAt,
	)
}
