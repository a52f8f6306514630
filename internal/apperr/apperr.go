// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared by every domain. Services return these (optionally
// wrapped with %w) and the per-domain errors packages map them to HTTP.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden request")
	ErrDatabase      = errors.New("database error")
	ErrInternal      = errors.New("internal server error")
	ErrRequestTimeout = errors.New("request timeout")

	// File pipeline errors.
	ErrInvalidFileData          = errors.New("file data is empty")
	ErrFileSizeExceeded         = errors.New("file size exceeded")
	ErrInvalidFileName          = errors.New("invalid file name")
	ErrUnsupportedFileExtension = errors.New("unsupported file extension")

	// Authentication errors.
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenCreation      = errors.New("token creation error")
	ErrUserNotFound       = errors.New("user not found")
)

// Wrap annotates err with a sentinel so callers can classify it with
// errors.Is while keeping the underlying cause in the chain.
func Wrap(sentinel error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}

// Wrapf annotates a sentinel with a formatted detail message.
func Wrapf(sentinel error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, a...))
}

// StatusCode maps an error chain to the HTTP status the response envelope
// should carry. Unrecognized errors are treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidFileData),
		errors.Is(err, ErrFileSizeExceeded),
		errors.Is(err, ErrInvalidFileName),
		errors.Is(err, ErrUnsupportedFileExtension),
		errors.Is(err, ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, ErrWrongCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRequestTimeout):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
