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
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/internal/database/postgres"
	"github.com/loftwire/loftwire-api/user/models"
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a UserRepository backed by PostgreSQL.
func NewPostgresRepository(client *postgres.Client) UserRepository {
	return &postgresRepository{client: client}
}

// userColumns selects the user row plus the most recent profile picture URL.
const userColumns = `u.id, u.username, u.email,
	(SELECT f.file_url FROM files f
	 WHERE f.user_id = u.id AND f.file_type = 'profile_picture'
	 ORDER BY f.created_at DESC LIMIT 1) AS profile_picture,
	u.created_by, u.created_at, u.modified_by, u.modified_at`

// Create inserts a new user row, assigning a fresh id.
func (r *postgresRepository) Create(ctx context.Context, req *models.CreateUserRequest, modifiedBy string) (*models.User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:         id,
		Username:   req.Username,
		Email:      req.Email,
		CreatedBy:  &modifiedBy,
		CreatedAt:  now,
		ModifiedBy: &modifiedBy,
		ModifiedAt: now,
	}

	query := `
		INSERT INTO users (id, username, email, created_by, created_at, modified_by, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	exec := r.client.Executor(ctx)
	_, err = exec.ExecContext(ctx, query,
		user.ID, user.Username, user.Email,
		user.CreatedBy, user.CreatedAt, user.ModifiedBy, user.ModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by id.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	exec := r.client.Executor(ctx)
	var user models.User
	err := exec.QueryRowxContext(ctx, query, id).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Find lists users matching the filter, newest first.
func (r *postgresRepository) Find(ctx context.Context, filter UserFilter, limit, offset int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE 1=1`
	args := []interface{}{}
	n := 0

	next := func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}

	if filter.ID != nil {
		query += ` AND u.id = ` + next()
		args = append(args, *filter.ID)
	}
	if filter.Username != "" {
		query += ` AND u.username = ` + next()
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += ` AND u.email = ` + next()
		args = append(args, filter.Email)
	}

	query += ` ORDER BY u.created_at DESC`
	if limit > 0 {
		query += ` LIMIT ` + next()
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ` + next()
		args = append(args, offset)
	}

	exec := r.client.Executor(ctx)
	rows, err := exec.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.StructScan(&user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// Update rewrites a user's mutable fields.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest, modifiedBy string) (bool, error) {
	query := `
		UPDATE users
		SET username = $1, email = $2, modified_by = $3, modified_at = $4
		WHERE id = $5
	`

	exec := r.client.Executor(ctx)
	res, err := exec.ExecContext(ctx, query, req.Username, req.Email, modifiedBy, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a user row, reporting whether a row was affected.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	exec := r.client.Executor(ctx)
	res, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
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
