// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/user/models"
)

// UserFilter narrows a user listing. Zero values mean no constraint.
type UserFilter struct {
	ID       *uuid.UUID
	Username string
	Email    string
}

// UserRepository defines the interface for user database operations.
// Mutating operations run on the transaction carried by ctx when one is
// present; the repository itself never commits or rolls back.
type UserRepository interface {
	// Create inserts a new user row, assigning a fresh id.
	Create(ctx context.Context, req *models.CreateUserRequest, modifiedBy string) (*models.User, error)

	// FindByID retrieves a user by id, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Find lists users matching the filter, newest first.
	Find(ctx context.Context, filter UserFilter, limit, offset int) ([]*models.User, error)

	// Update rewrites a user's mutable fields. Returns whether a row was
	// actually updated.
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest, modifiedBy string) (bool, error)

	// Delete removes a user row. Returns whether a row was actually
	// removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// WithTransaction executes fn within a database transaction injected
	// into the context passed to fn. fn returning an error rolls back.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
