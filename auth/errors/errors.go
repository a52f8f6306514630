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

// HandleServiceError maps an auth service error onto the response envelope.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apperr.ErrMissingCredentials):
		return types.Failure(c, http.StatusBadRequest, "Missing credentials")
	case errors.Is(err, apperr.ErrUserNotFound):
		return types.Failure(c, http.StatusNotFound, "User not found")
	case errors.Is(err, apperr.ErrWrongCredentials):
		return types.Failure(c, http.StatusUnauthorized, "Wrong credentials")
	case errors.Is(err, apperr.ErrValidation):
		return types.Failure(c, http.StatusBadRequest, "Invalid credentials payload")
	case errors.Is(err, apperr.ErrTokenCreation):
		return types.Failure(c, http.StatusInternalServerError, "Token creation failed")
	default:
		return types.Failure(c, apperr.StatusCode(err), "An unexpected error occurred")
	}
}
