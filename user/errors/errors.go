// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/types"
)

// HandleServiceError maps a user service error onto the response envelope.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return types.Failure(c, http.StatusNotFound, "User not found")
	case errors.Is(err, apperr.ErrValidation):
		return types.Failure(c, http.StatusBadRequest, "Invalid user data")
	case errors.Is(err, apperr.ErrForbidden):
		return types.Failure(c, http.StatusForbidden, "Forbidden content detected")
	case errors.Is(err, apperr.ErrInvalidFileData),
		errors.Is(err, apperr.ErrInvalidFileName),
		errors.Is(err, apperr.ErrFileSizeExceeded),
		errors.Is(err, apperr.ErrUnsupportedFileExtension):
		return types.Failure(c, http.StatusBadRequest, "Invalid profile picture")
	default:
		return types.Failure(c, apperr.StatusCode(err), "An unexpected error occurred")
	}
}

// HandleUUIDError reports a malformed id path parameter.
func HandleUUIDError(c *fiber.Ctx) error {
	return types.Failure(c, http.StatusBadRequest, "Invalid user id format")
}
