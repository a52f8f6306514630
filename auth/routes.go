// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loftwire/loftwire-api/auth/handlers"
)

// AuthHandlers holds all the handlers this router needs.
type AuthHandlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes is the single entry point for setting up auth routes.
// These routes are public; they are how a client obtains a token.
func RegisterRoutes(app *fiber.App, handlers *AuthHandlers) {
	group := app.Group("/auth")

	group.Post("/register", handlers.AuthHandler.Register)
	group.Post("/login", handlers.AuthHandler.Login)
}
