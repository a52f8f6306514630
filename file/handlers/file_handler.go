// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/file/errors"
	"github.com/loftwire/loftwire-api/file/services"
	"github.com/loftwire/loftwire-api/internal/types"
)

// FileHandler handles file download and deletion requests.
type FileHandler struct {
	fileService services.FileService
}

// NewFileHandler creates a new FileHandler with injected dependencies
func NewFileHandler(fileService services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// ServeFile streams the stored bytes as an attachment download.
func (h *FileHandler) ServeFile(c *fiber.Ctx) error {
	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return errors.HandleUUIDError(c)
	}

	file, err := h.fileService.GetFileMetadata(c.Context(), fileID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	reader, err := h.fileService.OpenFile(c.Context(), file)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.OriginFileName))
	return c.SendStream(reader, int(file.FileSize))
}

// GetFileMetadata returns the metadata row for a file.
func (h *FileHandler) GetFileMetadata(c *fiber.Ctx) error {
	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return errors.HandleUUIDError(c)
	}

	file, err := h.fileService.GetFileMetadata(c.Context(), fileID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "File retrieved successfully", file)
}

// DeleteFile removes a file's metadata row and its bytes on disk.
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return errors.HandleUUIDError(c)
	}

	if _, ok := c.Locals(types.UserCtxName).(types.UserContext); !ok {
		return types.Failure(c, http.StatusUnauthorized, "Invalid user context")
	}

	if err := h.fileService.DeleteFile(c.Context(), fileID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "File deleted successfully", nil)
}
