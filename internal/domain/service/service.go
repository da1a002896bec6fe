package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/pkg/domain"
)

// Category groups beauty services for browsing and filtering.
type Category string

const (
	CategoryHair     Category = "hair"
	CategoryNails    Category = "nails"
	CategorySkincare Category = "skincare"
	CategoryMakeup   Category = "makeup"
	CategoryEyebrows Category = "eyebrows"
)

// IsValid returns true if the category is recognized.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHair, CategoryNails, CategorySkincare, CategoryMakeup, CategoryEyebrows:
		return true
	}
	return false
}

// Catalog limits for offered services.
const (
	MinPriceCents      int64 = 1500  // $15.00
	MaxPriceCents      int64 = 50000 // $500.00
	MinDurationMinutes       = 15
	MaxDurationMinutes       = 480
	MaxNameLength            = 100
	MaxDescriptionLen        = 500
)

// Service is an offering a professional lists in the catalog.
type Service struct {
	id             uuid.UUID
	professionalID uuid.UUID
	name           string
	description    string
	category       Category
	priceCents     int64
	durationMin    int
	active         bool
	version        int64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewService creates an active catalog service with validated fields.
func NewService(
	professionalID uuid.UUID,
	name, description string,
	category Category,
	priceCents int64,
	durationMin int,
) (*Service, error) {
	if professionalID == uuid.Nil {
		return nil, domain.NewValidationError("professional ID is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("service name is required")
	}
	if len(name) > MaxNameLength {
		return nil, domain.NewValidationError(fmt.Sprintf("service name exceeds %d characters", MaxNameLength))
	}
	if len(description) > MaxDescriptionLen {
		return nil, domain.NewValidationError(fmt.Sprintf("description exceeds %d characters", MaxDescriptionLen))
	}
	if !category.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid category: %s", category))
	}
	if priceCents < MinPriceCents || priceCents > MaxPriceCents {
		return nil, domain.NewValidationError("price is outside the allowed range")
	}
	if durationMin < MinDurationMinutes || durationMin > MaxDurationMinutes {
		return nil, domain.NewValidationError("duration is outside the allowed range")
	}

	now := time.Now().UTC()
	return &Service{
		id:             uuid.New(),
		professionalID: professionalID,
		name:           name,
		description:    description,
		category:       category,
		priceCents:     priceCents,
		durationMin:    durationMin,
		active:         true,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Reconstruct rebuilds a Service from persistence data (no validation).
func Reconstruct(
	id, professionalID uuid.UUID,
	name, description string,
	category Category,
	priceCents int64,
	durationMin int,
	active bool,
	version int64,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:             id,
		professionalID: professionalID,
		name:           name,
		description:    description,
		category:       category,
		priceCents:     priceCents,
		durationMin:    durationMin,
		active:         active,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// --- Getters ---

func (s *Service) ID() uuid.UUID             { return s.id }
func (s *Service) ProfessionalID() uuid.UUID { return s.professionalID }
func (s *Service) Name() string              { return s.name }
func (s *Service) Description() string       { return s.description }
func (s *Service) Category() Category        { return s.category }
func (s *Service) PriceCents() int64         { return s.priceCents }
func (s *Service) DurationMin() int          { return s.durationMin }
func (s *Service) IsActive() bool            { return s.active }
func (s *Service) Version() int64            { return s.version }
func (s *Service) CreatedAt() time.Time      { return s.createdAt }
func (s *Service) UpdatedAt() time.Time      { return s.updatedAt }

// IsOwnedBy checks if the service belongs to the given professional.
func (s *Service) IsOwnedBy(professionalID uuid.UUID) bool {
	return s.professionalID == professionalID
}

// --- Behavior ---

// Update applies partial updates to the service.
func (s *Service) Update(name, description string, category Category, priceCents int64, durationMin int) error {
	if name != "" {
		if len(name) > MaxNameLength {
			return domain.NewValidationError(fmt.Sprintf("service name exceeds %d characters", MaxNameLength))
		}
		s.name = name
	}
	if description != "" {
		if len(description) > MaxDescriptionLen {
			return domain.NewValidationError(fmt.Sprintf("description exceeds %d characters", MaxDescriptionLen))
		}
		s.description = description
	}
	if category != "" {
		if !category.IsValid() {
			return domain.NewValidationError(fmt.Sprintf("invalid category: %s", category))
		}
		s.category = category
	}
	if priceCents != 0 {
		if priceCents < MinPriceCents || priceCents > MaxPriceCents {
			return domain.NewValidationError("price is outside the allowed range")
		}
		s.priceCents = priceCents
	}
	if durationMin != 0 {
		if durationMin < MinDurationMinutes || durationMin > MaxDurationMinutes {
			return domain.NewValidationError("duration is outside the allowed range")
		}
		s.durationMin = durationMin
	}
	s.version++
	s.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate removes the service from the public catalog. Existing bookings
// are not affected.
func (s *Service) Deactivate() {
	s.active = false
	s.version++
	s.updatedAt = time.Now().UTC()
}

// Activate restores the service to the public catalog.
func (s *Service) Activate() {
	s.active = true
	s.version++
	s.updatedAt = time.Now().UTC()
}
