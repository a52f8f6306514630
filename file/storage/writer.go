// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package storage

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
)

// Writer persists file bytes under a root directory, creating parent
// directories as needed. Writes are direct, not atomic: a crash mid-write
// can leave a truncated file behind.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer over the given filesystem.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write stores data at path, creating all parent directories, then re-stats
// the path to confirm the write landed. Any I/O failure maps to an internal
// error.
func (w *Writer) Write(path string, data []byte) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Error("Error creating directory for %s: %v", path, err)
		return apperr.Wrap(apperr.ErrInternal, err)
	}

	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		log.Error("Error writing file %s: %v", path, err)
		return apperr.Wrap(apperr.ErrInternal, err)
	}

	exists, err := afero.Exists(w.fs, path)
	if err != nil || !exists {
		log.Error("File %s was not written successfully", path)
		return apperr.Wrap(apperr.ErrInternal, err)
	}

	return nil
}

// Remove deletes the file at path.
func (w *Writer) Remove(path string) error {
	if err := w.fs.Remove(path); err != nil {
		log.Error("Error deleting file from filesystem: %s", path)
		return apperr.Wrap(apperr.ErrInternal, err)
	}
	return nil
}

// Open returns a readable handle to the file at path for streaming.
func (w *Writer) Open(path string) (afero.File, error) {
	f, err := w.fs.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInternal, err)
	}
	return f, nil
}

// Exists reports whether a file exists at path.
func (w *Writer) Exists(path string) bool {
	exists, err := afero.Exists(w.fs, path)
	return err == nil && exists
}
