// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/device/errors"
	"github.com/loftwire/loftwire-api/device/models"
	"github.com/loftwire/loftwire-api/device/services"
	"github.com/loftwire/loftwire-api/internal/types"
)

// DeviceHandler handles all device-related HTTP requests.
type DeviceHandler struct {
	deviceService services.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler with injected dependencies
func NewDeviceHandler(deviceService services.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

func userContext(c *fiber.Ctx) (*types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return nil, false
	}
	return &user, true
}

// CreateDevice handles device registration
func (h *DeviceHandler) CreateDevice(c *fiber.Ctx) error {
	user, ok := userContext(c)
	if !ok {
		return types.Failure(c, http.StatusUnauthorized, "Invalid user context")
	}

	var req models.DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid request body")
	}

	device, err := h.deviceService.CreateDevice(c.Context(), &req, user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(types.Response{
		Status:  http.StatusCreated,
		Message: "Device created successfully",
		Data:    device,
	})
}

// GetDevice handles retrieving a single device
func (h *DeviceHandler) GetDevice(c *fiber.Ctx) error {
	deviceID, err := uuid.FromString(c.Params("deviceId"))
	if err != nil {
		return errors.HandleUUIDError(c, "device id")
	}

	device, err := h.deviceService.GetDevice(c.Context(), deviceID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Device retrieved successfully", device)
}

// QueryDevices handles listing devices
func (h *DeviceHandler) QueryDevices(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	offset := c.QueryInt("offset")

	devices, err := h.deviceService.QueryDevices(c.Context(), limit, offset)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Devices retrieved successfully", devices)
}

// UpdateDevice handles rewriting a device's mutable fields
func (h *DeviceHandler) UpdateDevice(c *fiber.Ctx) error {
	user, ok := userContext(c)
	if !ok {
		return types.Failure(c, http.StatusUnauthorized, "Invalid user context")
	}

	deviceID, err := uuid.FromString(c.Params("deviceId"))
	if err != nil {
		return errors.HandleUUIDError(c, "device id")
	}

	var req models.DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid request body")
	}

	device, err := h.deviceService.UpdateDevice(c.Context(), deviceID, &req, user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Device updated successfully", device)
}

// DeleteDevice handles removing a device
func (h *DeviceHandler) DeleteDevice(c *fiber.Ctx) error {
	deviceID, err := uuid.FromString(c.Params("deviceId"))
	if err != nil {
		return errors.HandleUUIDError(c, "device id")
	}

	if err := h.deviceService.DeleteDevice(c.Context(), deviceID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Device deleted successfully", nil)
}

// BatchUpsertDevices handles upserting a list of devices for one user
func (h *DeviceHandler) BatchUpsertDevices(c *fiber.Ctx) error {
	user, ok := userContext(c)
	if !ok {
		return types.Failure(c, http.StatusUnauthorized, "Invalid user context")
	}

	userID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return errors.HandleUUIDError(c, "user id")
	}

	var entries []models.BatchDeviceEntry
	if err := c.BodyParser(&entries); err != nil {
		return types.Failure(c, http.StatusBadRequest, "Invalid request body")
	}

	devices, err := h.deviceService.BatchUpsert(c.Context(), userID, entries, user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return types.Success(c, "Devices upserted successfully", devices)
}
