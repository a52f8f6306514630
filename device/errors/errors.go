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

// HandleServiceError maps a device service error onto the response envelope.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return types.Failure(c, http.StatusNotFound, "Device not found")
	case errors.Is(err, apperr.ErrValidation):
		return types.Failure(c, http.StatusBadRequest, "Invalid device data")
	default:
		return types.Failure(c, apperr.StatusCode(err), "An unexpected error occurred")
	}
}

// HandleUUIDError reports a malformed id path parameter.
func HandleUUIDError(c *fiber.Ctx, fieldName string) error {
	return types.Failure(c, http.StatusBadRequest, "Invalid "+fieldName+" format")
}
