// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/spf13/afero"

	"github.com/loftwire/loftwire-api/file/models"
)

// FileService defines the interface for file operations.
type FileService interface {
	// ProcessUpload runs the upload pipeline for one file part: validate,
	// allocate a collision-free name, write to disk, insert metadata. The
	// insert joins the transaction carried by ctx when one is present, so
	// a caller can make the upload part of a larger unit of work.
	ProcessUpload(ctx context.Context, upload *models.Upload, userID uuid.NullUUID, fileType models.FileType, modifiedBy string) (*models.File, error)

	// GetFileMetadata retrieves a file record by id.
	GetFileMetadata(ctx context.Context, id uuid.UUID) (*models.File, error)

	// GetFileByUser retrieves the file record owned by a user.
	GetFileByUser(ctx context.Context, userID uuid.UUID) (*models.File, error)

	// DeleteFile removes both the metadata row and the on-disk object
	// within one transaction; the disk removal happens before commit so a
	// failed removal rolls the row delete back.
	DeleteFile(ctx context.Context, id uuid.UUID) error

	// OpenFile returns a readable handle to the stored bytes for
	// streaming a download.
	OpenFile(ctx context.Context, file *models.File) (afero.File, error)
}
