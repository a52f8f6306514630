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

	"github.com/loftwire/loftwire-api/auth/models"
	"github.com/loftwire/loftwire-api/internal/database/postgres"
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates an AuthRepository backed by PostgreSQL.
func NewPostgresRepository(client *postgres.Client) AuthRepository {
	return &postgresRepository{client: client}
}

// CreateCredentials inserts a credential row for a user.
func (r *postgresRepository) CreateCredentials(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `INSERT INTO user_auth (user_id, password_hash) VALUES ($1, $2)`

	exec := r.client.Executor(ctx)
	if _, err := exec.ExecContext(ctx, query, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to create credentials: %w", err)
	}
	return nil
}

// FindByUserID retrieves a credential row by user id.
func (r *postgresRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error) {
	query := `SELECT user_id, password_hash FROM user_auth WHERE user_id = $1`

	exec := r.client.Executor(ctx)
	var auth models.UserAuth
	err := exec.QueryRowxContext(ctx, query, userID).StructScan(&auth)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find credentials: %w", err)
	}
	return &auth, nil
}

// DeleteByUserID removes a user's credential row.
func (r *postgresRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM user_auth WHERE user_id = $1`

	exec := r.client.Executor(ctx)
	res, err := exec.ExecContext(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete credentials: %w", err)
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
