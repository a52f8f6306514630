// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/loftwire/loftwire-api/internal/apperr"
)

// UploadPolicy enforces the size ceiling and filename/extension rules before
// any disk or database mutation occurs. It has no side effects and is safe
// for concurrent use.
type UploadPolicy struct {
	maxSize      int64
	extensionPat *regexp.Regexp
}

// NewUploadPolicy compiles the allowed-extension list ("jpg|jpeg|png" form)
// into the case-insensitive filename pattern used on every upload.
func NewUploadPolicy(allowedExtensions string, maxSize int64) (*UploadPolicy, error) {
	pat, err := regexp.Compile(fmt.Sprintf(`(?i)^.*\.(%s)$`, allowedExtensions))
	if err != nil {
		return nil, fmt.Errorf("invalid allowed extensions pattern %q: %w", allowedExtensions, err)
	}
	return &UploadPolicy{maxSize: maxSize, extensionPat: pat}, nil
}

// Validate runs the checks in order, short-circuiting on the first failure:
// size ceiling, path traversal guard, extension policy.
func (p *UploadPolicy) Validate(data []byte, originalFilename string) error {
	if int64(len(data)) > p.maxSize {
		return apperr.ErrFileSizeExceeded
	}

	if strings.Contains(originalFilename, "..") || strings.Contains(originalFilename, "/") {
		return apperr.ErrInvalidFileName
	}

	if !p.extensionPat.MatchString(originalFilename) {
		return apperr.ErrUnsupportedFileExtension
	}

	return nil
}

// AllowsFilename reports whether a filename passes the extension policy
// alone. The multipart parser uses this to reject file parts early, before
// buffering their payload.
func (p *UploadPolicy) AllowsFilename(originalFilename string) bool {
	return p.extensionPat.MatchString(originalFilename)
}

// MaxSize returns the configured upload ceiling in bytes.
func (p *UploadPolicy) MaxSize() int64 {
	return p.maxSize
}
