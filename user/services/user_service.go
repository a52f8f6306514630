// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"regexp"

	uuid "github.com/gofrs/uuid"

	authrepo "github.com/loftwire/loftwire-api/auth/repository"
	filemodels "github.com/loftwire/loftwire-api/file/models"
	fileservices "github.com/loftwire/loftwire-api/file/services"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
	"github.com/loftwire/loftwire-api/internal/types"
	"github.com/loftwire/loftwire-api/user/models"
	"github.com/loftwire/loftwire-api/user/repository"
)

const maxUsernameLength = 64

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService defines the interface for user account operations.
type UserService interface {
	// CreateUser inserts a user and, when picture is non-nil, stores its
	// profile picture through the upload pipeline in the same transaction.
	CreateUser(ctx context.Context, req *models.CreateUserRequest, picture *filemodels.Upload, userCtx *types.UserContext) (*models.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// QueryUsers lists users matching the optional filters.
	QueryUsers(ctx context.Context, q *models.UserQuery) ([]*models.User, error)

	// UpdateUser rewrites a user's mutable fields.
	UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest, userCtx *types.UserContext) (*models.User, error)

	// DeleteUser removes a user row along with its credential row.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo        repository.UserRepository
	authRepo    authrepo.AuthRepository
	fileService fileservices.FileService
}

// NewUserService creates a UserService with injected dependencies.
func NewUserService(repo repository.UserRepository, authRepo authrepo.AuthRepository, fileService fileservices.FileService) UserService {
	return &userService{
		repo:        repo,
		authRepo:    authRepo,
		fileService: fileService,
	}
}

func validateUserFields(username, email string) error {
	if username == "" {
		return apperr.Wrapf(apperr.ErrValidation, "username is required")
	}
	if len(username) > maxUsernameLength {
		return apperr.Wrapf(apperr.ErrValidation, "username exceeds %d characters", maxUsernameLength)
	}
	if email == "" {
		return apperr.Wrapf(apperr.ErrValidation, "email is required")
	}
	if !emailPattern.MatchString(email) {
		return apperr.Wrapf(apperr.ErrValidation, "email %q is malformed", email)
	}
	return nil
}

// CreateUser inserts the user row and, when a picture is supplied, runs the
// upload pipeline on the same transaction so a failed upload rolls the user
// back too.
func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest, picture *filemodels.Upload, userCtx *types.UserContext) (*models.User, error) {
	if err := validateUserFields(req.Username, req.Email); err != nil {
		return nil, err
	}

	modifiedBy := userCtx.UserID.String()
	var created *models.User

	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.repo.Create(txCtx, req, modifiedBy)
		if err != nil {
			log.ErrorWithContext(txCtx, "Error creating user: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}

		if picture != nil {
			owner := uuid.NullUUID{UUID: user.ID, Valid: true}
			stored, err := s.fileService.ProcessUpload(txCtx, picture, owner, filemodels.FileTypeProfilePicture, modifiedBy)
			if err != nil {
				return err
			}
			user.ProfilePicture = &stored.FileURL
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetUser retrieves a user by id.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.ErrorWithContext(ctx, "Error retrieving user: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	if user == nil {
		return nil, apperr.Wrapf(apperr.ErrNotFound, "user not found")
	}
	return user, nil
}

// QueryUsers lists users matching the optional filters.
func (s *userService) QueryUsers(ctx context.Context, q *models.UserQuery) ([]*models.User, error) {
	filter := repository.UserFilter{
		Username: q.Username,
		Email:    q.Email,
	}
	if q.ID != "" {
		id, err := uuid.FromString(q.ID)
		if err != nil {
			return nil, apperr.Wrapf(apperr.ErrValidation, "invalid id filter")
		}
		filter.ID = &id
	}

	users, err := s.repo.Find(ctx, filter, q.Limit, q.Offset)
	if err != nil {
		log.ErrorWithContext(ctx, "Error listing users: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return users, nil
}

// UpdateUser rewrites a user's mutable fields in a transaction.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest, userCtx *types.UserContext) (*models.User, error) {
	if err := validateUserFields(req.Username, req.Email); err != nil {
		return nil, err
	}

	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		updated, err := s.repo.Update(txCtx, id, req, userCtx.UserID.String())
		if err != nil {
			log.ErrorWithContext(txCtx, "Error updating user: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if !updated {
			return apperr.Wrapf(apperr.ErrNotFound, "user not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

// DeleteUser removes the user row and its credential row in one transaction.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.repo.Delete(txCtx, id)
		if err != nil {
			log.ErrorWithContext(txCtx, "Error deleting user: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if !deleted {
			return apperr.Wrapf(apperr.ErrNotFound, "user not found")
		}

		// credentials may not exist for users created by admins
		if _, err := s.authRepo.DeleteByUserID(txCtx, id); err != nil {
			log.ErrorWithContext(txCtx, "Error deleting credentials: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		return nil
	})
}
