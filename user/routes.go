// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package user

import (
	"github.com/gofiber/fiber/v2"

	authjwt "github.com/loftwire/loftwire-api/internal/middleware/authjwt"
	platformconfig "github.com/loftwire/loftwire-api/internal/platform/config"
	"github.com/loftwire/loftwire-api/user/handlers"
)

// UserHandlers holds all the handlers this router needs.
type UserHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes.
// All user routes require a valid bearer token.
func RegisterRoutes(app *fiber.App, handlers *UserHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		SecretKey: cfg.JWT.Secret,
	})

	group := app.Group("/user", jwtMiddleware)

	group.Get("/", handlers.UserHandler.QueryUsers)
	group.Post("/", handlers.UserHandler.CreateUser)
	group.Get("/:userId", handlers.UserHandler.GetUser)
	group.Put("/:userId", handlers.UserHandler.UpdateUser)
	group.Delete("/:userId", handlers.UserHandler.DeleteUser)
}
