// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/internal/apperr"
)

// FileType categorizes stored files; it doubles as the subdirectory name
// under the private asset root.
type FileType string

const (
	FileTypeProfilePicture FileType = "profile_picture"
	FileTypeDocument       FileType = "document"
	FileTypeVideo          FileType = "video"
	FileTypeOther          FileType = "other"
)

// ParseFileType validates a raw string against the known file types.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case FileTypeProfilePicture, FileTypeDocument, FileTypeVideo, FileTypeOther:
		return FileType(s), nil
	default:
		return "", apperr.Wrapf(apperr.ErrValidation, "invalid file type: %s", s)
	}
}

func (t FileType) String() string {
	return string(t)
}

// File represents an uploaded file record in the database. The invariant is
// that file_relative_path resolves under the private asset root to a file
// that exists on disk for every row whose deletion has not completed.
type File struct {
	ID               uuid.UUID     `db:"id" json:"id"`
	UserID           uuid.NullUUID `db:"user_id" json:"userId"`
	FileName         string        `db:"file_name" json:"fileName"`
	OriginFileName   string        `db:"origin_file_name" json:"originFileName"`
	FileRelativePath string        `db:"file_relative_path" json:"fileRelativePath"`
	FileURL          string        `db:"file_url" json:"fileUrl"`
	ContentType      string        `db:"content_type" json:"contentType"`
	FileSize         int64         `db:"file_size" json:"fileSize"`
	FileType         FileType      `db:"file_type" json:"fileType"`
	CreatedBy        *string       `db:"created_by" json:"createdBy"`
	CreatedAt        time.Time     `db:"created_at" json:"createdAt"`
	ModifiedBy       *string       `db:"modified_by" json:"modifiedBy"`
	ModifiedAt       time.Time     `db:"modified_at" json:"modifiedAt"`
}

// Upload carries one multipart file part through the upload pipeline. The
// content type and original name are untrusted client input.
type Upload struct {
	ContentType      string
	OriginalFilename string
	Data             []byte
}

// CreateFileRequest is the service-level payload for inserting a metadata
// row after the disk write succeeded.
type CreateFileRequest struct {
	UserID           uuid.NullUUID
	FileName         string
	OriginFileName   string
	FileRelativePath string
	FileURL          string
	ContentType      string
	FileSize         int64
	FileType         FileType
	ModifiedBy       string
}
