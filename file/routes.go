// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package file

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loftwire/loftwire-api/file/handlers"
	authjwt "github.com/loftwire/loftwire-api/internal/middleware/authjwt"
	platformconfig "github.com/loftwire/loftwire-api/internal/platform/config"
)

// FileHandlers holds all the handlers this router needs.
type FileHandlers struct {
	FileHandler *handlers.FileHandler
}

// RegisterRoutes is the single entry point for setting up file routes.
// All file routes require a valid bearer token.
func RegisterRoutes(app *fiber.App, handlers *FileHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		SecretKey: cfg.JWT.Secret,
	})

	group := app.Group("/file", jwtMiddleware)

	group.Get("/meta/:fileId", handlers.FileHandler.GetFileMetadata)
	group.Get("/:fileId", handlers.FileHandler.ServeFile)
	group.Delete("/:fileId", handlers.FileHandler.DeleteFile)
}
