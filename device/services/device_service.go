// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/device/models"
	"github.com/loftwire/loftwire-api/device/repository"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
	"github.com/loftwire/loftwire-api/internal/types"
)

// DeviceService defines the interface for device registry operations.
type DeviceService interface {
	// CreateDevice registers a device for a user.
	CreateDevice(ctx context.Context, req *models.DeviceRequest, userCtx *types.UserContext) (*models.Device, error)

	// GetDevice retrieves a device by id.
	GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error)

	// QueryDevices lists all devices.
	QueryDevices(ctx context.Context, limit, offset int) ([]*models.Device, error)

	// UpdateDevice rewrites a device's mutable fields.
	UpdateDevice(ctx context.Context, id uuid.UUID, req *models.DeviceRequest, userCtx *types.UserContext) (*models.Device, error)

	// DeleteDevice removes a device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// BatchUpsert applies a list of device entries for one user in a
	// single transaction: entries with an id update, the rest insert.
	BatchUpsert(ctx context.Context, userID uuid.UUID, entries []models.BatchDeviceEntry, userCtx *types.UserContext) ([]*models.Device, error)
}

type deviceService struct {
	repo repository.DeviceRepository
}

// NewDeviceService creates a DeviceService with injected dependencies.
func NewDeviceService(repo repository.DeviceRepository) DeviceService {
	return &deviceService{repo: repo}
}

func parseEnums(osValue, statusValue string) (models.DeviceOS, models.DeviceStatus, error) {
	deviceOS, err := models.ParseDeviceOS(osValue)
	if err != nil {
		return "", "", apperr.Wrap(apperr.ErrValidation, err)
	}
	status, err := models.ParseDeviceStatus(statusValue)
	if err != nil {
		return "", "", apperr.Wrap(apperr.ErrValidation, err)
	}
	return deviceOS, status, nil
}

// CreateDevice registers a device for a user.
func (s *deviceService) CreateDevice(ctx context.Context, req *models.DeviceRequest, userCtx *types.UserContext) (*models.Device, error) {
	if req.Name == "" {
		return nil, apperr.Wrapf(apperr.ErrValidation, "device name is required")
	}
	userID, err := uuid.FromString(req.UserID)
	if err != nil {
		return nil, apperr.Wrapf(apperr.ErrValidation, "invalid user id")
	}
	deviceOS, status, err := parseEnums(req.DeviceOS, req.Status)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInternal, fmt.Errorf("failed to generate device id: %w", err))
	}

	now := time.Now().UTC()
	modifiedBy := userCtx.UserID.String()
	device := &models.Device{
		ID:           id,
		UserID:       userID,
		Name:         req.Name,
		DeviceOS:     deviceOS,
		Status:       status,
		RegisteredAt: now,
		CreatedBy:    &modifiedBy,
		CreatedAt:    now,
		ModifiedBy:   &modifiedBy,
		ModifiedAt:   now,
	}

	if err := s.repo.Create(ctx, device); err != nil {
		log.ErrorWithContext(ctx, "Error creating device: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return device, nil
}

// GetDevice retrieves a device by id.
func (s *deviceService) GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	device, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.ErrorWithContext(ctx, "Error retrieving device: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	if device == nil {
		return nil, apperr.Wrapf(apperr.ErrNotFound, "device not found")
	}
	return device, nil
}

// QueryDevices lists all devices.
func (s *deviceService) QueryDevices(ctx context.Context, limit, offset int) ([]*models.Device, error) {
	devices, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		log.ErrorWithContext(ctx, "Error listing devices: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return devices, nil
}

// UpdateDevice rewrites a device's mutable fields in a transaction.
func (s *deviceService) UpdateDevice(ctx context.Context, id uuid.UUID, req *models.DeviceRequest, userCtx *types.UserContext) (*models.Device, error) {
	if req.Name == "" {
		return nil, apperr.Wrapf(apperr.ErrValidation, "device name is required")
	}
	deviceOS, status, err := parseEnums(req.DeviceOS, req.Status)
	if err != nil {
		return nil, err
	}

	modifiedBy := userCtx.UserID.String()
	device := &models.Device{
		ID:         id,
		Name:       req.Name,
		DeviceOS:   deviceOS,
		Status:     status,
		ModifiedBy: &modifiedBy,
		ModifiedAt: time.Now().UTC(),
	}

	err = s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		updated, err := s.repo.Update(txCtx, device)
		if err != nil {
			log.ErrorWithContext(txCtx, "Error updating device: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if !updated {
			return apperr.Wrapf(apperr.ErrNotFound, "device not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetDevice(ctx, id)
}

// DeleteDevice removes a device.
func (s *deviceService) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.ErrorWithContext(ctx, "Error deleting device: %v", err)
		return apperr.Wrap(apperr.ErrDatabase, err)
	}
	if !deleted {
		return apperr.Wrapf(apperr.ErrNotFound, "device not found")
	}
	return nil
}

// BatchUpsert applies all entries in one transaction; the first invalid or
// missing entry rolls the whole batch back.
func (s *deviceService) BatchUpsert(ctx context.Context, userID uuid.UUID, entries []models.BatchDeviceEntry, userCtx *types.UserContext) ([]*models.Device, error) {
	if len(entries) == 0 {
		return nil, apperr.Wrapf(apperr.ErrValidation, "empty device batch")
	}

	modifiedBy := userCtx.UserID.String()
	now := time.Now().UTC()

	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, entry := range entries {
			if entry.Name == "" {
				return apperr.Wrapf(apperr.ErrValidation, "device name is required")
			}
			deviceOS, status, err := parseEnums(entry.DeviceOS, entry.Status)
			if err != nil {
				return err
			}

			if entry.ID != nil {
				device := &models.Device{
					ID:         *entry.ID,
					Name:       entry.Name,
					DeviceOS:   deviceOS,
					Status:     status,
					ModifiedBy: &modifiedBy,
					ModifiedAt: now,
				}
				updated, err := s.repo.Update(txCtx, device)
				if err != nil {
					log.ErrorWithContext(txCtx, "Error updating device in batch: %v", err)
					return apperr.Wrap(apperr.ErrDatabase, err)
				}
				if !updated {
					return apperr.Wrapf(apperr.ErrNotFound, "device %s not found", entry.ID)
				}
				continue
			}

			id, err := uuid.NewV4()
			if err != nil {
				return apperr.Wrap(apperr.ErrInternal, fmt.Errorf("failed to generate device id: %w", err))
			}
			device := &models.Device{
				ID:           id,
				UserID:       userID,
				Name:         entry.Name,
				DeviceOS:     deviceOS,
				Status:       status,
				RegisteredAt: now,
				CreatedBy:    &modifiedBy,
				CreatedAt:    now,
				ModifiedBy:   &modifiedBy,
				ModifiedAt:   now,
			}
			if err := s.repo.Create(txCtx, device); err != nil {
				log.ErrorWithContext(txCtx, "Error creating device in batch: %v", err)
				return apperr.Wrap(apperr.ErrDatabase, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	devices, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		log.ErrorWithContext(ctx, "Error listing devices after batch: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return devices, nil
}
