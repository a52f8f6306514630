// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"

	authmodels "github.com/loftwire/loftwire-api/auth/models"
	filemodels "github.com/loftwire/loftwire-api/file/models"
)

// MockAuthRepository is a mock implementation of auth repository.AuthRepository
// for testing the credential cascade on user deletion.
type MockAuthRepository struct {
	mock.Mock
}

// CreateCredentials mocks the CreateCredentials method
func (m *MockAuthRepository) CreateCredentials(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// FindByUserID mocks the FindByUserID method
func (m *MockAuthRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*authmodels.UserAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authmodels.UserAuth), args.Error(1)
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
	if fn != nil {
		return fn(ctx)
	}
	return args.Error(0)
}

// MockFileService is a mock implementation of file services.FileService
type MockFileService struct {
	mock.Mock
}

// ProcessUpload mocks the ProcessUpload method
func (m *MockFileService) ProcessUpload(ctx context.Context, upload *filemodels.Upload, userID uuid.NullUUID, fileType filemodels.FileType, modifiedBy string) (*filemodels.File, error) {
	args := m.Called(ctx, upload, userID, fileType, modifiedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filemodels.File), args.Error(1)
}

// GetFileMetadata mocks the GetFileMetadata method
func (m *MockFileService) GetFileMetadata(ctx context.Context, id uuid.UUID) (*filemodels.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filemodels.File), args.Error(1)
}

// GetFileByUser mocks the GetFileByUser method
func (m *MockFileService) GetFileByUser(ctx context.Context, userID uuid.UUID) (*filemodels.File, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filemodels.File), args.Error(1)
}

// DeleteFile mocks the DeleteFile method
func (m *MockFileService) DeleteFile(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// OpenFile mocks the OpenFile method
func (m *MockFileService) OpenFile(ctx context.Context, file *filemodels.File) (afero.File, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(afero.File), args.Error(1)
}
