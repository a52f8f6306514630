// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/afero"

	"github.com/loftwire/loftwire-api/auth"
	authhandlers "github.com/loftwire/loftwire-api/auth/handlers"
	authrepository "github.com/loftwire/loftwire-api/auth/repository"
	authservices "github.com/loftwire/loftwire-api/auth/services"
	"github.com/loftwire/loftwire-api/device"
	devicehandlers "github.com/loftwire/loftwire-api/device/handlers"
	devicerepository "github.com/loftwire/loftwire-api/device/repository"
	deviceservices "github.com/loftwire/loftwire-api/device/services"
	"github.com/loftwire/loftwire-api/file"
	filehandlers "github.com/loftwire/loftwire-api/file/handlers"
	filerepository "github.com/loftwire/loftwire-api/file/repository"
	fileservices "github.com/loftwire/loftwire-api/file/services"
	"github.com/loftwire/loftwire-api/file/storage"
	"github.com/loftwire/loftwire-api/file/validation"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/database/postgres"
	authjwt "github.com/loftwire/loftwire-api/internal/middleware/authjwt"
	"github.com/loftwire/loftwire-api/internal/middleware/inspect"
	"github.com/loftwire/loftwire-api/internal/middleware/requestid"
	"github.com/loftwire/loftwire-api/internal/pkg/content"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
	"github.com/loftwire/loftwire-api/internal/pkg/multipart"
	platformconfig "github.com/loftwire/loftwire-api/internal/platform/config"
	"github.com/loftwire/loftwire-api/internal/types"
	"github.com/loftwire/loftwire-api/user"
	userhandlers "github.com/loftwire/loftwire-api/user/handlers"
	userrepository "github.com/loftwire/loftwire-api/user/repository"
	userservices "github.com/loftwire/loftwire-api/user/services"
)

func errorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, fiber.ErrRequestTimeout) || errors.Is(err, apperr.ErrRequestTimeout) {
		return types.Failure(c, http.StatusRequestTimeout, "Request timed out")
	}

	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	// handlers write their own envelopes; don't clobber them
	if len(c.Response().Body()) > 0 {
		return nil
	}
	return types.Failure(c, code, err.Error())
}

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	patterns, err := content.CompilePatterns(cfg.Inspector.Patterns)
	if err != nil {
		stdlog.Fatalf("Failed to compile forbidden patterns: %v", err)
	}

	policy, err := validation.NewUploadPolicy(cfg.Uploads.AllowedExtensions, cfg.Uploads.MaxSize)
	if err != nil {
		stdlog.Fatalf("Failed to build upload policy: %v", err)
	}

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		stdlog.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer pgClient.Close()

	if err := pgClient.RunMigrations("file://migrations", cfg.Database.Postgres.Database); err != nil {
		stdlog.Fatalf("Failed to run migrations: %v", err)
	}

	fs := afero.NewOsFs()

	fileRepo := filerepository.NewPostgresRepository(pgClient)
	authRepo := authrepository.NewPostgresRepository(pgClient)
	userRepo := userrepository.NewPostgresRepository(pgClient)
	deviceRepo := devicerepository.NewPostgresRepository(pgClient)

	fileService := fileservices.NewFileService(
		fileRepo, policy, storage.NewAllocator(fs), storage.NewWriter(fs),
		fileservices.ServiceConfig{
			PrivatePath: cfg.Assets.PrivatePath,
			PrivateURL:  cfg.Assets.PrivateURL,
		},
	)
	authService := authservices.NewAuthService(authRepo, cfg.JWT.Secret, cfg.JWT.TokenTTL)
	userService := userservices.NewUserService(userRepo, authRepo, fileService)
	deviceService := deviceservices.NewDeviceService(deviceRepo)

	multipartOpts := multipart.Options{
		Patterns:      patterns,
		MaxFileSize:   cfg.Uploads.MaxSize,
		AllowFilename: policy.AllowsFilename,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
		BodyLimit:    int(cfg.Uploads.MaxSize) + 1<<20,
		ErrorHandler: errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))
	app.Use(requestid.New())
	app.Use(inspect.New(inspect.Config{
		Patterns:    patterns,
		VerboseBody: cfg.Inspector.VerboseBody,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Static("/docs", "./docs")
	app.Static(cfg.Assets.PublicURL, cfg.Assets.PublicPath)

	privateAssets := app.Group(cfg.Assets.PrivateURL, authjwt.New(authjwt.Config{
		SecretKey: cfg.JWT.Secret,
	}))
	privateAssets.Static("/", cfg.Assets.PrivatePath)

	auth.RegisterRoutes(app, &auth.AuthHandlers{
		AuthHandler: authhandlers.NewAuthHandler(authService),
	})
	user.RegisterRoutes(app, &user.UserHandlers{
		UserHandler: userhandlers.NewUserHandler(userService, multipartOpts),
	}, cfg)
	device.RegisterRoutes(app, &device.DeviceHandlers{
		DeviceHandler: devicehandlers.NewDeviceHandler(deviceService),
	}, cfg)
	file.RegisterRoutes(app, &file.FileHandlers{
		FileHandler: filehandlers.NewFileHandler(fileService),
	}, cfg)

	addr := cfg.Server.Addr()
	log.Info("Starting Loftwire API server on %s", addr)
	stdlog.Fatal(app.Listen(addr))
}
