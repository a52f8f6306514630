// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/file/models"
)

// FileRepository defines the interface for file metadata database
// operations. Mutating operations run on the transaction carried by ctx when
// one is present; the repository itself never commits or rolls back.
type FileRepository interface {
	// Create inserts a new file record, assigning a fresh id.
	Create(ctx context.Context, req *models.CreateFileRequest) (*models.File, error)

	// FindByID retrieves a file by its id, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*models.File, error)

	// FindByUser retrieves the file owned by a user, or nil when absent.
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.File, error)

	// Delete removes a file row. Returns whether a row was actually
	// removed; false means not found and must not be treated as success.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// WithTransaction executes fn within a database transaction injected
	// into the context passed to fn. fn returning an error rolls back.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
