package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	serviceDomain "github.com/beautygo/beautygo-api/internal/domain/service"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

func TestCreateService(t *testing.T) {
	svc := NewCatalogService(newFakeServiceRepo(), zap.NewNop())
	professionalID := uuid.New()

	dto, err := svc.CreateService(context.Background(), professionalID, CreateServiceRequest{
		Name:        "Gel Manicure",
		Category:    "nails",
		PriceCents:  4500,
		DurationMin: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, professionalID, dto.ProfessionalID)
	assert.Equal(t, "nails", dto.Category)
	assert.True(t, dto.Active)

	_, err = svc.CreateService(context.Background(), professionalID, CreateServiceRequest{
		Name:        "Mystery",
		Category:    "plumbing",
		PriceCents:  4500,
		DurationMin: 60,
	})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestUpdateService_OwnershipEnforced(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo, zap.NewNop())
	professionalID := uuid.New()
	created := seedService(repo, professionalID, 4500)
	ctx := context.Background()

	dto, err := svc.UpdateService(ctx, created.ID(), professionalID, UpdateServiceRequest{PriceCents: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), dto.PriceCents)

	_, err = svc.UpdateService(ctx, created.ID(), uuid.New(), UpdateServiceRequest{PriceCents: 100000})
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}

func TestUpdateService_ActiveToggle(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo, zap.NewNop())
	professionalID := uuid.New()
	created := seedService(repo, professionalID, 4500)
	ctx := context.Background()

	inactive := false
	dto, err := svc.UpdateService(ctx, created.ID(), professionalID, UpdateServiceRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, dto.Active)

	active := true
	dto, err = svc.UpdateService(ctx, created.ID(), professionalID, UpdateServiceRequest{Active: &active})
	require.NoError(t, err)
	assert.True(t, dto.Active)
}

func TestDeactivateService(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo, zap.NewNop())
	professionalID := uuid.New()
	created := seedService(repo, professionalID, 4500)
	ctx := context.Background()

	require.NoError(t, svc.DeactivateService(ctx, created.ID(), professionalID))

	// Gone from the public catalog, still visible to the owner.
	listed, err := svc.ListServices(ctx, serviceDomain.ListFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, listed.Items)

	own, err := svc.ListOwnServices(ctx, professionalID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.False(t, own[0].Active)

	err = svc.DeactivateService(ctx, created.ID(), uuid.New())
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}
