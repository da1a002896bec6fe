package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	serviceDomain "github.com/beautygo/beautygo-api/internal/domain/service"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// ServiceModel is the GORM model for the services table.
type ServiceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"not null;size:100"`
	Description    string    `gorm:"size:500"`
	Category       string    `gorm:"not null;size:30;index"`
	PriceCents     int64     `gorm:"not null"`
	DurationMin    int       `gorm:"not null"`
	Active         bool      `gorm:"not null;default:true"`
	Version        int64     `gorm:"not null;default:1"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ServiceModel) TableName() string {
	return "services"
}

// GormServiceRepository is the GORM-based implementation of ServiceRepository.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID retrieves a service by its unique identifier.
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*serviceDomain.Service, error) {
	var model ServiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Service", id.String())
		}
		return nil, fmt.Errorf("failed to find service by ID: %w", err)
	}
	return toDomainService(&model), nil
}

// FindActiveForProfessional retrieves the service only when it is active and
// belongs to the given professional.
func (r *GormServiceRepository) FindActiveForProfessional(ctx context.Context, serviceID, professionalID uuid.UUID) (*serviceDomain.Service, error) {
	var model ServiceModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ? AND active = true", serviceID, professionalID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Service", serviceID.String())
		}
		return nil, fmt.Errorf("failed to find active service: %w", err)
	}
	return toDomainService(&model), nil
}

// ListActive lists active services of approved professionals for the public
// catalog with optional filters.
func (r *GormServiceRepository) ListActive(ctx context.Context, filter serviceDomain.ListFilter, page, limit int) ([]*serviceDomain.Service, int64, error) {
	query := r.db.WithContext(ctx).Model(&ServiceModel{}).
		Joins("JOIN users ON users.id = services.professional_id").
		Where("services.active = true AND users.approved = true")

	if filter.Category != "" {
		query = query.Where("services.category = ?", string(filter.Category))
	}
	if filter.MinPriceCents > 0 {
		query = query.Where("services.price_cents >= ?", filter.MinPriceCents)
	}
	if filter.MaxPriceCents > 0 {
		query = query.Where("services.price_cents <= ?", filter.MaxPriceCents)
	}
	if filter.City != "" {
		query = query.Where("users.city ILIKE ?", filter.City)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("services.name ILIKE ? OR services.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	var models []ServiceModel
	offset := (page - 1) * limit
	if err := query.
		Order("services.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*serviceDomain.Service, len(models))
	for i := range models {
		services[i] = toDomainService(&models[i])
	}
	return services, total, nil
}

// FindByProfessionalID lists all services of a professional, active or not.
func (r *GormServiceRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*serviceDomain.Service, error) {
	var models []ServiceModel
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find services by professional: %w", err)
	}

	services := make([]*serviceDomain.Service, len(models))
	for i := range models {
		services[i] = toDomainService(&models[i])
	}
	return services, nil
}

// Save persists a new service.
func (r *GormServiceRepository) Save(ctx context.Context, s *serviceDomain.Service) error {
	if err := r.db.WithContext(ctx).Create(toServiceModel(s)).Error; err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

// Update persists changes to an existing service with optimistic locking.
func (r *GormServiceRepository) Update(ctx context.Context, s *serviceDomain.Service) error {
	model := toServiceModel(s)

	expectedVersion := s.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&ServiceModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"description":  model.Description,
			"category":     model.Category,
			"price_cents":  model.PriceCents,
			"duration_min": model.DurationMin,
			"active":       model.Active,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("service was modified by another transaction")
	}
	return nil
}

func toServiceModel(s *serviceDomain.Service) *ServiceModel {
	return &ServiceModel{
		ID:             s.ID(),
		ProfessionalID: s.ProfessionalID(),
		Name:           s.Name(),
		Description:    s.Description(),
		Category:       string(s.Category()),
		PriceCents:     s.PriceCents(),
		DurationMin:    s.DurationMin(),
		Active:         s.IsActive(),
		Version:        s.Version(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func toDomainService(m *ServiceModel) *serviceDomain.Service {
	return serviceDomain.Reconstruct(
		m.ID,
		m.ProfessionalID,
		m.Name,
		m.Description,
		serviceDomain.Category(m.Category),
		m.PriceCents,
		m.DurationMin,
		m.Active,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
