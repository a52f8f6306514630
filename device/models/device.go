// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
)

// DeviceOS is the operating system a device runs.
type DeviceOS string

const (
	DeviceOSAndroid DeviceOS = "Android"
	DeviceOSIOS     DeviceOS = "iOS"
)

// ParseDeviceOS validates a device OS value.
func ParseDeviceOS(s string) (DeviceOS, error) {
	switch DeviceOS(s) {
	case DeviceOSAndroid, DeviceOSIOS:
		return DeviceOS(s), nil
	}
	return "", fmt.Errorf("unknown device os %q", s)
}

// DeviceStatus is the lifecycle state of a device.
type DeviceStatus string

const (
	DeviceStatusActive         DeviceStatus = "active"
	DeviceStatusInactive       DeviceStatus = "inactive"
	DeviceStatusPending        DeviceStatus = "pending"
	DeviceStatusBlocked        DeviceStatus = "blocked"
	DeviceStatusDecommissioned DeviceStatus = "decommissioned"
)

// ParseDeviceStatus validates a device status value.
func ParseDeviceStatus(s string) (DeviceStatus, error) {
	switch DeviceStatus(s) {
	case DeviceStatusActive, DeviceStatusInactive, DeviceStatusPending,
		DeviceStatusBlocked, DeviceStatusDecommissioned:
		return DeviceStatus(s), nil
	}
	return "", fmt.Errorf("unknown device status %q", s)
}

// Device is one registered device row.
type Device struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	UserID       uuid.UUID    `json:"user_id" db:"user_id"`
	Name         string       `json:"name" db:"name"`
	DeviceOS     DeviceOS     `json:"device_os" db:"device_os"`
	Status       DeviceStatus `json:"status" db:"status"`
	RegisteredAt time.Time    `json:"registered_at" db:"registered_at"`
	CreatedBy    *string      `json:"created_by,omitempty" db:"created_by"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	ModifiedBy   *string      `json:"modified_by,omitempty" db:"modified_by"`
	ModifiedAt   time.Time    `json:"modified_at" db:"modified_at"`
}

// DeviceRequest is the request body for creating or updating a device.
type DeviceRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	DeviceOS string `json:"device_os"`
	Status   string `json:"status"`
}

// BatchDeviceEntry is one element of a batch upsert. An entry with an ID
// updates that row; one without inserts a new device.
type BatchDeviceEntry struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     string     `json:"name"`
	DeviceOS string     `json:"device_os"`
	Status   string     `json:"status"`
}
