// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/loftwire/loftwire-api/auth/models"
)

// MockAuthRepository is a mock implementation of AuthRepository for testing
type MockAuthRepository struct {
	mock.Mock
}

// CreateCredentials mocks the CreateCredentials method
func (m *MockAuthRepository) CreateCredentials(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// FindByUserID mocks the FindByUserID method
func (m *MockAuthRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAuth), args.Error(1)
}

// DeleteByUserID mocks the DeleteByUserID method
func (m *MockAuthRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockAuthRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
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
