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

func newPropertyService(properties *mockPropertyRepo) PropertyService {
	repo := &repository.Repository{Property: properties}
	return NewPropertyService(repo, zap.NewNop())
}

func TestCreatePropertyDefaultsToAvailable(t *testing.T) {
	properties := new(mockPropertyRepo)
	properties.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Property) bool {
		return p.Status == entity.PropertyStatusAvailable &&
			p.Title == "Two-bed flat" &&
			p.RentAmount == 2500
	})).Return(nil).Once()

	svc := newPropertyService(properties)

	resp, err := svc.CreateProperty(context.Background(), &request.CreatePropertyRequest{
		Title:        "Two-bed flat",
		Address:      "12 Marina Road",
		City:         "Lagos",
		PropertyType: "apartment",
		RentAmount:   2500,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PropertyStatusAvailable, resp.Status)
	properties.AssertExpectations(t)
}

func TestCreatePropertyValidatesInput(t *testing.T) {
	properties := new(mockPropertyRepo)
	svc := newPropertyService(properties)

	tests := []struct {
		name string
		req  *request.CreatePropertyRequest
	}{
		{
			name: "missing title",
			req: &request.CreatePropertyRequest{
				Address:      "12 Marina Road",
				City:         "Lagos",
				PropertyType: "apartment",
				RentAmount:   2500,
			},
		},
		{
			name: "zero rent",
			req: &request.CreatePropertyRequest{
				Title:        "Two-bed flat",
				Address:      "12 Marina Road",
				City:         "Lagos",
				PropertyType: "apartment",
			},
		},
		{
			name: "bad status",
			req: &request.CreatePropertyRequest{
				Title:        "Two-bed flat",
				Address:      "12 Marina Road",
				City:         "Lagos",
				PropertyType: "apartment",
				RentAmount:   2500,
				Status:       "demolished",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProperty(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}

	properties.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetPropertyUnknownIDFails(t *testing.T) {
	propertyID := uuid.New()

	properties := new(mockPropertyRepo)
	properties.On("FindByID", mock.Anything, propertyID).Return(nil, nil)

	svc := newPropertyService(properties)

	_, err := svc.GetProperty(context.Background(), propertyID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetPropertyRejectsMalformedID(t *testing.T) {
	properties := new(mockPropertyRepo)
	svc := newPropertyService(properties)

	_, err := svc.GetProperty(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid property ID format")
	properties.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdatePropertyKeepsCreationTimestamp(t *testing.T) {
	propertyID := uuid.New()

	existing := &entity.Property{
		Base:   entity.Base{ID: propertyID},
		Title:  "Two-bed flat",
		Status: entity.PropertyStatusAvailable,
	}

	properties := new(mockPropertyRepo)
	properties.On("FindByID", mock.Anything, propertyID).Return(existing, nil)
	properties.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Property) bool {
		return p.ID == propertyID &&
			p.CreatedAt.Equal(existing.CreatedAt) &&
			p.Status == entity.PropertyStatusOccupied
	})).Return(nil).Once()

	svc := newPropertyService(properties)

	resp, err := svc.UpdateProperty(context.Background(), propertyID.String(), &request.UpdatePropertyRequest{
		CreatePropertyRequest: request.CreatePropertyRequest{
			Title:        "Two-bed flat",
			Address:      "12 Marina Road",
			City:         "Lagos",
			PropertyType: "apartment",
			RentAmount:   2500,
			Status:       "occupied",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PropertyStatusOccupied, resp.Status)
	properties.AssertExpectations(t)
}
