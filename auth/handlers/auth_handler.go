// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/loftwire/loftwire-api/auth/errors"
	"github.com/loftwire/loftwire-api/auth/models"
	"github.com/loftwire/loftwire-api/auth/services"
	"github.com/loftwire/loftwire-api/internal/types"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler with injected dependencies
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles credential registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.authService.Register(c.Context(), &payload); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Credentials registered successfully", nil)
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.AuthPayload
	if err := c.BodyParser(&payload); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid request body")
	}

	body, err := h.authService.Login(c.Context(), &payload)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Login successful", body)
}
