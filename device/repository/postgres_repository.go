// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/device/models"
	"github.com/loftwire/loftwire-api/internal/database/postgres"
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a DeviceRepository backed by PostgreSQL.
func NewPostgresRepository(client *postgres.Client) DeviceRepository {
	return &postgresRepository{client: client}
}

const deviceColumns = `id, user_id, name, device_os, status, registered_at,
	created_by, created_at, modified_by, modified_at`

// Create inserts a new device row.
func (r *postgresRepository) Create(ctx context.Context, device *models.Device) error {
	query := `
		INSERT INTO devices (` + deviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	exec := r.client.Executor(ctx)
	_, err := exec.ExecContext(ctx, query,
		device.ID, device.UserID, device.Name, device.DeviceOS, device.Status,
		device.RegisteredAt, device.CreatedBy, device.CreatedAt,
		device.ModifiedBy, device.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// FindByID retrieves a device by id.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	exec := r.client.Executor(ctx)
	var device models.Device
	err := exec.QueryRowxContext(ctx, query, id).StructScan(&device)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find device: %w", err)
	}
	return &device, nil
}

// FindByUser lists a user's devices, newest first.
func (r *postgresRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryDevices(ctx, query, userID)
}

// FindAll lists all devices, newest first.
func (r *postgresRepository) FindAll(ctx context.Context, limit, offset int) ([]*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}
	if offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, len(args)+1)
		args = append(args, offset)
	}
	return r.queryDevices(ctx, query, args...)
}

func (r *postgresRepository) queryDevices(ctx context.Context, query string, args ...interface{}) ([]*models.Device, error) {
	exec := r.client.Executor(ctx)
	rows, err := exec.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	devices := []*models.Device{}
	for rows.Next() {
		var device models.Device
		if err := rows.StructScan(&device); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, &device)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate devices: %w", err)
	}
	return devices, nil
}

// Update rewrites a device's mutable fields.
func (r *postgresRepository) Update(ctx context.Context, device *models.Device) (bool, error) {
	query := `
		UPDATE devices
		SET name = $1, device_os = $2, status = $3, modified_by = $4, modified_at = $5
		WHERE id = $6
	`

	exec := r.client.Executor(ctx)
	res, err := exec.ExecContext(ctx, query,
		device.Name, device.DeviceOS, device.Status,
		device.ModifiedBy, device.ModifiedAt, device.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update device: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a device row, reporting whether a row was affected.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM devices WHERE id = $1`

	exec := r.client.Executor(ctx)
	res, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete device: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// WithTransaction executes fn within a database transaction.
func (r *postgresRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}
