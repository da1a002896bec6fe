package service

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows the public catalog listing. Zero values mean "no filter".
type ListFilter struct {
	Category      Category
	MinPriceCents int64
	MaxPriceCents int64
	City          string
	Search        string
}

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	// FindByID retrieves a service by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)

	// FindActiveForProfessional retrieves the service only when it is active
	// and owned by the given professional (booking-creation check).
	FindActiveForProfessional(ctx context.Context, serviceID, professionalID uuid.UUID) (*Service, error)

	// ListActive lists active services of approved professionals for the
	// public catalog.
	ListActive(ctx context.Context, filter ListFilter, page, limit int) ([]*Service, int64, error)

	// FindByProfessionalID lists all services of a professional, active or not.
	FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*Service, error)

	// Save persists a new service.
	Save(ctx context.Context, service *Service) error

	// Update persists changes to an existing service.
	Update(ctx context.Context, service *Service) error
}
