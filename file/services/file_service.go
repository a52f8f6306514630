// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"path/filepath"

	uuid "github.com/gofrs/uuid"
	"github.com/spf13/afero"

	"github.com/loftwire/loftwire-api/file/models"
	"github.com/loftwire/loftwire-api/file/repository"
	"github.com/loftwire/loftwire-api/file/storage"
	"github.com/loftwire/loftwire-api/file/validation"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
)

// ServiceConfig holds the file service's path configuration.
type ServiceConfig struct {
	// PrivatePath is the on-disk root for uploaded files.
	PrivatePath string
	// PrivateURL is the public-facing URL prefix for uploaded files.
	PrivateURL string
}

type fileService struct {
	repo      repository.FileRepository
	policy    *validation.UploadPolicy
	allocator *storage.Allocator
	writer    *storage.Writer
	config    ServiceConfig
}

// NewFileService creates a FileService orchestrating validator, allocator,
// writer and repository.
func NewFileService(
	repo repository.FileRepository,
	policy *validation.UploadPolicy,
	allocator *storage.Allocator,
	writer *storage.Writer,
	config ServiceConfig,
) FileService {
	return &fileService{
		repo:      repo,
		policy:    policy,
		allocator: allocator,
		writer:    writer,
		config:    config,
	}
}

// ProcessUpload validates the payload, writes it to disk under an allocated
// name, and inserts the metadata row on the executor carried by ctx. The
// disk write happens before the insert; if the insert fails, the written
// file is removed best-effort so a rolled-back transaction does not leave an
// orphan behind.
func (s *fileService) ProcessUpload(ctx context.Context, upload *models.Upload, userID uuid.NullUUID, fileType models.FileType, modifiedBy string) (*models.File, error) {
	if len(upload.Data) == 0 {
		log.ErrorWithContext(ctx, "File data is empty")
		return nil, apperr.ErrInvalidFileData
	}

	if err := s.policy.Validate(upload.Data, upload.OriginalFilename); err != nil {
		return nil, err
	}

	fileName, relativePath, absolutePath, err := s.buildFilePath(upload.OriginalFilename, fileType)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(absolutePath, upload.Data); err != nil {
		return nil, err
	}

	req := &models.CreateFileRequest{
		UserID:           userID,
		FileName:         fileName,
		OriginFileName:   upload.OriginalFilename,
		FileRelativePath: relativePath,
		FileURL:          fmt.Sprintf("%s/%s", s.config.PrivateURL, relativePath),
		ContentType:      upload.ContentType,
		FileSize:         int64(len(upload.Data)),
		FileType:         fileType,
		ModifiedBy:       modifiedBy,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		log.ErrorWithContext(ctx, "Error inserting file metadata: %v", err)
		if rmErr := s.writer.Remove(absolutePath); rmErr != nil {
			log.WarnWithContext(ctx, "Orphaned file left on disk: %s", absolutePath)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}

	if userID.Valid {
		file, err := s.findByUser(ctx, userID.UUID)
		if err != nil {
			return nil, err
		}
		if file != nil {
			return file, nil
		}
	}
	return created, nil
}

// GetFileMetadata retrieves a file record by id.
func (s *fileService) GetFileMetadata(ctx context.Context, id uuid.UUID) (*models.File, error) {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.ErrorWithContext(ctx, "Error retrieving file: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	if file == nil {
		return nil, apperr.Wrapf(apperr.ErrNotFound, "file not found")
	}
	return file, nil
}

// GetFileByUser retrieves the file record owned by a user.
func (s *fileService) GetFileByUser(ctx context.Context, userID uuid.UUID) (*models.File, error) {
	file, err := s.findByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperr.Wrapf(apperr.ErrNotFound, "file not found")
	}
	return file, nil
}

// DeleteFile removes the metadata row and the on-disk object in one unit.
// The disk removal runs inside the transaction, before commit: if it fails
// the row delete is rolled back and database and disk stay consistent.
func (s *fileService) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		file, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			log.ErrorWithContext(txCtx, "Error retrieving file: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if file == nil {
			return apperr.Wrapf(apperr.ErrNotFound, "file not found")
		}

		deleted, err := s.repo.Delete(txCtx, id)
		if err != nil {
			log.ErrorWithContext(txCtx, "Error deleting file: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if !deleted {
			return apperr.Wrapf(apperr.ErrNotFound, "file not found")
		}

		absolutePath := filepath.Join(s.config.PrivatePath, file.FileRelativePath)
		if err := s.writer.Remove(absolutePath); err != nil {
			return err
		}
		return nil
	})
}

// OpenFile returns a readable handle to the stored bytes.
func (s *fileService) OpenFile(ctx context.Context, file *models.File) (afero.File, error) {
	absolutePath := filepath.Join(s.config.PrivatePath, file.FileRelativePath)
	if !s.writer.Exists(absolutePath) {
		return nil, apperr.Wrapf(apperr.ErrNotFound, "file not found")
	}
	return s.writer.Open(absolutePath)
}

func (s *fileService) findByUser(ctx context.Context, userID uuid.UUID) (*models.File, error) {
	file, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		log.ErrorWithContext(ctx, "Error retrieving file: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return file, nil
}

// buildFilePath allocates a collision-free filename and derives the relative
// and absolute paths for the upload.
func (s *fileService) buildFilePath(originalFilename string, fileType models.FileType) (string, string, string, error) {
	typeDir := filepath.Join(s.config.PrivatePath, fileType.String())

	fileName, err := s.allocator.Allocate(originalFilename, typeDir)
	if err != nil {
		return "", "", "", apperr.Wrap(apperr.ErrInternal, err)
	}

	relativePath := fmt.Sprintf("%s/%s", fileType, fileName)
	absolutePath := filepath.Join(typeDir, fileName)
	return fileName, relativePath, absolutePath, nil
}
