// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loftwire/loftwire-api/device/handlers"
	authjwt "github.com/loftwire/loftwire-api/internal/middleware/authjwt"
	platformconfig "github.com/loftwire/loftwire-api/internal/platform/config"
)

// DeviceHandlers holds all the handlers this router needs.
type DeviceHandlers struct {
	DeviceHandler *handlers.DeviceHandler
}

// RegisterRoutes is the single entry point for setting up device routes.
// All device routes require a valid bearer token.
func RegisterRoutes(app *fiber.App, handlers *DeviceHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		SecretKey: cfg.JWT.Secret,
	})

	group := app.Group("/device", jwtMiddleware)

	group.Get("/", handlers.DeviceHandler.QueryDevices)
	group.Post("/", handlers.DeviceHandler.CreateDevice)
	group.Put("/batch/:userId", handlers.DeviceHandler.BatchUpsertDevices)
	group.Get("/:deviceId", handlers.DeviceHandler.GetDevice)
	group.Put("/:deviceId", handlers.DeviceHandler.UpdateDevice)
	group.Delete("/:deviceId", handlers.DeviceHandler.DeleteDevice)
}
