package usecase

import (
	"context"
	"testing"

	"property-hub/internal/data/entity"
	"property-hub/internal/data/repository"
	"property-hub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTenantService(tenants *mockTenantRepo, users *mockUserRepo, properties *mockPropertyRepo) TenantService {
	repo := &repository.Repository{
		User:     users,
		Property: properties,
		Tenant:   tenants,
	}
	return NewTenantService(repo, zap.NewNop())
}

func TestCreateTenantStartsActive(t *testing.T) {
	userID := uuid.New()

	users := new(mockUserRepo)
	users.On("FindByID", mock.Anything, userID).Return(&entity.User{
		Base: entity.Base{ID: userID},
		Role: entity.RoleTenant,
	}, nil)

	tenants := new(mockTenantRepo)
	tenants.On("Create", mock.Anything, mock.MatchedBy(func(tn *entity.Tenant) bool {
		return tn.UserID == userID && tn.IsActive && tn.PropertyID == nil
	})).Return(nil).Once()
	tenants.On("FindByID", mock.Anything, mock.Anything).Return(&entity.TenantDetail{
		Tenant: entity.Tenant{UserID: userID, IsActive: true},
	}, nil)

	svc := newTenantService(tenants, users, new(mockPropertyRepo))

	resp, err := svc.CreateTenant(context.Background(), &request.CreateTenantRequest{
		UserID: userID.String(),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	tenants.AssertExpectations(t)
}

func TestCreateTenantRejectsUnknownUser(t *testing.T) {
	userID := uuid.New()

	users := new(mockUserRepo)
	users.On("FindByID", mock.Anything, userID).Return(nil, nil)

	tenants := new(mockTenantRepo)

	svc := newTenantService(tenants, users, new(mockPropertyRepo))

	_, err := svc.CreateTenant(context.Background(), &request.CreateTenantRequest{
		UserID: userID.String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	tenants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTenantValidatesLeaseDates(t *testing.T) {
	badDate := "09/01/2026"

	svc := newTenantService(new(mockTenantRepo), new(mockUserRepo), new(mockPropertyRepo))

	_, err := svc.CreateTenant(context.Background(), &request.CreateTenantRequest{
		UserID:     uuid.New().String(),
		LeaseStart: &badDate,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateTenantChecksAssignedProperty(t *testing.T) {
	tenantID := uuid.New()
	propertyID := uuid.New()
	propertyRef := propertyID.String()

	tenants := new(mockTenantRepo)
	tenants.On("FindByID", mock.Anything, tenantID).Return(&entity.TenantDetail{
		Tenant: entity.Tenant{Base: entity.Base{ID: tenantID}, IsActive: true},
	}, nil)

	properties := new(mockPropertyRepo)
	properties.On("FindByID", mock.Anything, propertyID).Return(nil, nil)

	svc := newTenantService(tenants, new(mockUserRepo), properties)

	_, err := svc.UpdateTenant(context.Background(), tenantID.String(), &request.UpdateTenantRequest{
		PropertyID: &propertyRef,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	tenants.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateTenantDeactivates(t *testing.T) {
	tenantID := uuid.New()
	inactive := false

	tenants := new(mockTenantRepo)
	tenants.On("FindByID", mock.Anything, tenantID).Return(&entity.TenantDetail{
		Tenant: entity.Tenant{Base: entity.Base{ID: tenantID}, IsActive: true},
	}, nil)
	tenants.On("Update", mock.Anything, mock.MatchedBy(func(tn *entity.Tenant) bool {
		return tn.ID == tenantID && !tn.IsActive
	})).Return(nil).Once()

	svc := newTenantService(tenants, new(mockUserRepo), new(mockPropertyRepo))

	_, err := svc.UpdateTenant(context.Background(), tenantID.String(), &request.UpdateTenantRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)
	tenants.AssertExpectations(t)
}
