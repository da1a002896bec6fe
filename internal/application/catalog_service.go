package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	serviceDomain "github.com/beautygo/beautygo-api/internal/domain/service"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// CreateServiceRequest holds the data to list a new catalog service.
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required"`
}

// UpdateServiceRequest holds partial updates to a catalog service.
type UpdateServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
	Active      *bool  `json:"active"`
}

// ServiceDTO is the response representation of a catalog service.
type ServiceDTO struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	PriceCents     int64     `json:"price_cents"`
	DurationMin    int       `json:"duration_min"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CatalogService manages the services professionals offer.
type CatalogService struct {
	services serviceDomain.ServiceRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(services serviceDomain.ServiceRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{services: services, logger: logger}
}

// CreateService lists a new service for the given professional.
func (s *CatalogService) CreateService(ctx context.Context, professionalID uuid.UUID, req CreateServiceRequest) (*ServiceDTO, error) {
	svc, err := serviceDomain.NewService(
		professionalID,
		req.Name,
		req.Description,
		serviceDomain.Category(req.Category),
		req.PriceCents,
		req.DurationMin,
	)
	if err != nil {
		return nil, err
	}

	if err := s.services.Save(ctx, svc); err != nil {
		return nil, err
	}

	result := toServiceDTO(svc)
	return &result, nil
}

// UpdateService applies partial updates to a service owned by the professional.
func (s *CatalogService) UpdateService(ctx context.Context, serviceID, professionalID uuid.UUID, req UpdateServiceRequest) (*ServiceDTO, error) {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !svc.IsOwnedBy(professionalID) {
		return nil, domain.NewForbiddenError("service belongs to another professional")
	}

	if err := svc.Update(req.Name, req.Description, serviceDomain.Category(req.Category), req.PriceCents, req.DurationMin); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			svc.Activate()
		} else {
			svc.Deactivate()
		}
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	result := toServiceDTO(svc)
	return &result, nil
}

// DeactivateService removes a service from the public catalog.
func (s *CatalogService) DeactivateService(ctx context.Context, serviceID, professionalID uuid.UUID) error {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}

	if !svc.IsOwnedBy(professionalID) {
		return domain.NewForbiddenError("service belongs to another professional")
	}

	svc.Deactivate()
	return s.services.Update(ctx, svc)
}

// GetService retrieves a single service.
func (s *CatalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*ServiceDTO, error) {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	result := toServiceDTO(svc)
	return &result, nil
}

// ListServices returns the public catalog: active services of approved
// professionals matching the filter.
func (s *CatalogService) ListServices(ctx context.Context, filter serviceDomain.ListFilter, page, limit int) (*domain.PaginatedResult[ServiceDTO], error) {
	list, total, err := s.services.ListActive(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]ServiceDTO, len(list))
	for i, svc := range list {
		dtos[i] = toServiceDTO(svc)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// ListOwnServices returns all of the professional's services, including
// deactivated ones.
func (s *CatalogService) ListOwnServices(ctx context.Context, professionalID uuid.UUID) ([]ServiceDTO, error) {
	list, err := s.services.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ServiceDTO, len(list))
	for i, svc := range list {
		dtos[i] = toServiceDTO(svc)
	}
	return dtos, nil
}

func toServiceDTO(svc *serviceDomain.Service) ServiceDTO {
	return ServiceDTO{
		ID:             svc.ID(),
		ProfessionalID: svc.ProfessionalID(),
		Name:           svc.Name(),
		Description:    svc.Description(),
		Category:       string(svc.Category()),
		PriceCents:     svc.PriceCents(),
		DurationMin:    svc.DurationMin(),
		Active:         svc.IsActive(),
		CreatedAt:      svc.CreatedAt(),
		UpdatedAt:      svc.UpdatedAt(),
	}
}
