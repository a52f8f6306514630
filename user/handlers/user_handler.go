// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/gorilla/schema"

	filemodels "github.com/loftwire/loftwire-api/file/models"
	"github.com/loftwire/loftwire-api/internal/pkg/multipart"
	"github.com/loftwire/loftwire-api/internal/types"
	"github.com/loftwire/loftwire-api/user/errors"
	"github.com/loftwire/loftwire-api/user/models"
	"github.com/loftwire/loftwire-api/user/services"
)

// UserHandler handles all user-related HTTP requests.
type UserHandler struct {
	userService   services.UserService
	multipartOpts multipart.Options
	queryDecoder  *schema.Decoder
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService, multipartOpts multipart.Options) *UserHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &UserHandler{
		userService:   userService,
		multipartOpts: multipartOpts,
		queryDecoder:  decoder,
	}
}

// CreateUser handles user creation from a multipart form with fields
// username, email and an optional profile_picture file.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return types.Failure(c, http.StatusUnauthorized, "Invalid user context")
	}

	rawForm, err := c.MultipartForm()
	if err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid multipart form")
	}

	form, err := multipart.Parse(rawForm, h.multipartOpts)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	username, _ := form.Field("username")
	email, _ := form.Field("email")
	req := &models.CreateUserRequest{Username: username, Email: email}

	var picture *filemodels.Upload
	if part := form.File("profile_picture"); part != nil {
		picture = &filemodels.Upload{
			ContentType:      part.ContentType,
			OriginalFilename: part.Filename,
			Data:             part.Data,
		}
	}

	created, err := h.userService.CreateUser(c.Context(), req, picture, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(types.Response{
		Status:  http.StatusCreated,
		Message: "User created successfully",
		Data:    created,
	})
}

// GetUser handles retrieving a single user
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return errors.HandleUUIDError(c)
	}

	result, err := h.userService.GetUser(c.Context(), userID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "User retrieved successfully", result)
}

// QueryUsers handles listing users with optional id/username/email filters
func (h *UserHandler) QueryUsers(c *fiber.Ctx) error {
	values := url.Values{}
	for key, value := range c.Queries() {
		values.Set(key, value)
	}

	var query models.UserQuery
	if err := h.queryDecoder.Decode(&query, values); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid query parameters")
	}

	users, err := h.userService.QueryUsers(c.Context(), &query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Users retrieved successfully", users)
}

// UpdateUser handles rewriting a user's mutable fields
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return types.Failure(c, http.StatusUnauthorized, "Invalid user context")
	}

	userID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return errors.HandleUUIDError(c)
	}

	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.userService.UpdateUser(c.Context(), userID, &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "User updated successfully", updated)
}

// DeleteUser handles removing a user
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return errors.HandleUUIDError(c)
	}

	if err := h.userService.DeleteUser(c.Context(), userID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "User deleted successfully", nil)
}
