// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/loftwire/loftwire-api/device/models"
)

// MockDeviceRepository is a mock implementation of DeviceRepository for testing
type MockDeviceRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockDeviceRepository) Create(ctx context.Context, device *models.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockDeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

// FindByUser mocks the FindByUser method
func (m *MockDeviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.Device, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Device), args.Error(1)
}

// FindAll mocks the FindAll method
func (m *MockDeviceRepository) FindAll(ctx context.Context, limit, offset int) ([]*models.Device, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Device), args.Error(1)
}

// Update mocks the Update method
func (m *MockDeviceRepository) Update(ctx context.Context, device *models.Device) (bool, error) {
	args := m.Called(ctx, device)
	return args.Bool(0), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockDeviceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockDeviceRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Get(0).(error)
	}
	// Execute the function if no error is expected
	if fn != nil {
		return fn(ctx)
	}
	return args.Error(0)
}
