// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/device/models"
)

// DeviceRepository defines the interface for device database operations.
// Mutating operations run on the transaction carried by ctx when one is
// present; the repository itself never commits or rolls back.
type DeviceRepository interface {
	// Create inserts a new device row, assigning a fresh id.
	Create(ctx context.Context, device *models.Device) error

	// FindByID retrieves a device by id, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Device, error)

	// FindByUser lists a user's devices, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.Device, error)

	// FindAll lists all devices, newest first.
	FindAll(ctx context.Context, limit, offset int) ([]*models.Device, error)

	// Update rewrites a device's mutable fields. Returns whether a row
	// was actually updated.
	Update(ctx context.Context, device *models.Device) (bool, error)

	// Delete removes a device row. Returns whether a row was actually
	// removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// WithTransaction executes fn within a database transaction injected
	// into the context passed to fn. fn returning an error rolls back.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
