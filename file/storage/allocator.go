// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	uuid "github.com/gofrs/uuid"
	"github.com/spf13/afero"
)

// maxSequentialAttempts bounds the numeric-disambiguator probe loop. Past
// this many collisions the allocator switches to a uuid suffix, which also
// cannot collide when two concurrent uploads race on the same stem.
const maxSequentialAttempts = 1000

// Allocator produces collision-free filenames within a directory by probing
// the filesystem's current state.
type Allocator struct {
	fs afero.Fs
}

// NewAllocator creates an Allocator over the given filesystem.
func NewAllocator(fs afero.Fs) *Allocator {
	return &Allocator{fs: fs}
}

// Allocate returns a filename unique within dir, derived from originalName.
// The first candidate is the original name itself; on collision a numeric
// disambiguator is appended: stem(1).ext, stem(2).ext, and so on. After
// maxSequentialAttempts collisions it falls back to stem-<uuid>.ext.
func (a *Allocator) Allocate(originalName, dir string) (string, error) {
	stem, ext := splitName(originalName)

	candidate := joinName(stem, ext)
	for count := 1; ; count++ {
		exists, err := afero.Exists(a.fs, filepath.Join(dir, candidate))
		if err != nil {
			return "", fmt.Errorf("failed to probe %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		if count > maxSequentialAttempts {
			id, err := uuid.NewV4()
			if err != nil {
				return "", fmt.Errorf("failed to generate filename suffix: %w", err)
			}
			return joinName(fmt.Sprintf("%s-%s", stem, id), ext), nil
		}
		candidate = joinName(fmt.Sprintf("%s(%d)", stem, count), ext)
	}
}

// splitName separates a filename into stem and extension (without the dot).
func splitName(name string) (string, string) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return stem, strings.TrimPrefix(ext, ".")
}

func joinName(stem, ext string) string {
	if ext == "" {
		return stem
	}
	return stem + "." + ext
}
