// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/auth/models"
)

// AuthRepository defines the interface for credential database operations.
// Mutating operations run on the transaction carried by ctx when one is
// present; the repository itself never commits or rolls back.
type AuthRepository interface {
	// CreateCredentials inserts a credential row for a user.
	CreateCredentials(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// FindByUserID retrieves a credential row, or nil when absent.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error)

	// DeleteByUserID removes a user's credential row. Returns whether a
	// row was actually removed.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (bool, error)

	// WithTransaction executes fn within a database transaction injected
	// into the context passed to fn. fn returning an error rolls back.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
