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

	"github.com/loftwire/loftwire-api/file/models"
	"github.com/loftwire/loftwire-api/internal/database/postgres"
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a FileRepository backed by PostgreSQL.
func NewPostgresRepository(client *postgres.Client) FileRepository {
	return &postgresRepository{client: client}
}

const fileColumns = `id, user_id, file_name, origin_file_name, file_relative_path, file_url,
	content_type, file_size, file_type, created_by, created_at, modified_by, modified_at`

// Create inserts a new file record, assigning a fresh id.
func (r *postgresRepository) Create(ctx context.Context, req *models.CreateFileRequest) (*models.File, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate file id: %w", err)
	}

	now := time.Now().UTC()
	file := &models.File{
		ID:               id,
		UserID:           req.UserID,
		FileName:         req.FileName,
		OriginFileName:   req.OriginFileName,
		FileRelativePath: req.FileRelativePath,
		FileURL:          req.FileURL,
		ContentType:      req.ContentType,
		FileSize:         req.FileSize,
		FileType:         req.FileType,
		CreatedBy:        &req.ModifiedBy,
		CreatedAt:        now,
		ModifiedBy:       &req.ModifiedBy,
		ModifiedAt:       now,
	}

	query := `
		INSERT INTO files (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	exec := r.client.Executor(ctx)
	_, err = exec.ExecContext(ctx, query,
		file.ID, file.UserID, file.FileName, file.OriginFileName, file.FileRelativePath,
		file.FileURL, file.ContentType, file.FileSize, file.FileType,
		file.CreatedBy, file.CreatedAt, file.ModifiedBy, file.ModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// FindByID retrieves a file by its id.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	exec := r.client.Executor(ctx)
	var file models.File
	err := exec.QueryRowxContext(ctx, query, id).StructScan(&file)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find file: %w", err)
	}
	return &file, nil
}

// FindByUser retrieves the most recent file owned by a user.
func (r *postgresRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.File, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	exec := r.client.Executor(ctx)
	var file models.File
	err := exec.QueryRowxContext(ctx, query, userID).StructScan(&file)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find file by user: %w", err)
	}
	return &file, nil
}

// Delete removes a file row, reporting whether a row was affected.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM files WHERE id = $1`

	exec := r.client.Executor(ctx)
	res, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete file: %w", err)
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
