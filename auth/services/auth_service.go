// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"time"

	uuid "github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/loftwire/loftwire-api/auth/models"
	"github.com/loftwire/loftwire-api/auth/repository"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/auth/tokens"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
)

// AuthService defines the interface for credential and token operations.
type AuthService interface {
	// Register stores bcrypt-hashed credentials for a user.
	Register(ctx context.Context, payload *models.RegisterPayload) error

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, payload *models.AuthPayload) (*models.AuthBody, error)
}

type authService struct {
	repo      repository.AuthRepository
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates an AuthService issuing HS256 tokens with the given
// secret and lifetime.
func NewAuthService(repo repository.AuthRepository, secretKey string, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:      repo,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Register stores bcrypt-hashed credentials for a user within a transaction.
func (s *authService) Register(ctx context.Context, payload *models.RegisterPayload) error {
	if payload.UserID == "" || payload.Password == "" {
		return apperr.ErrMissingCredentials
	}

	userID, err := uuid.FromString(payload.UserID)
	if err != nil {
		return apperr.Wrapf(apperr.ErrValidation, "invalid user id")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.ErrorWithContext(ctx, "Error hashing password: %v", err)
		return apperr.Wrap(apperr.ErrInternal, err)
	}

	return s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByUserID(txCtx, userID)
		if err != nil {
			log.ErrorWithContext(txCtx, "Error checking credentials: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if existing != nil {
			return apperr.Wrapf(apperr.ErrValidation, "credentials already registered")
		}
		if err := s.repo.CreateCredentials(txCtx, userID, string(hash)); err != nil {
			log.ErrorWithContext(txCtx, "Error storing credentials: %v", err)
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		return nil
	})
}

// Login verifies credentials and issues a bearer token. Empty fields, an
// unknown identity and a wrong password are reported as distinct errors.
func (s *authService) Login(ctx context.Context, payload *models.AuthPayload) (*models.AuthBody, error) {
	if payload.ClientID == "" || payload.ClientSecret == "" {
		return nil, apperr.ErrMissingCredentials
	}

	userID, err := uuid.FromString(payload.ClientID)
	if err != nil {
		return nil, apperr.ErrUserNotFound
	}

	auth, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		log.ErrorWithContext(ctx, "Error loading credentials: %v", err)
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	if auth == nil {
		return nil, apperr.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(payload.ClientSecret)); err != nil {
		return nil, apperr.ErrWrongCredentials
	}

	token, err := tokens.Generate(s.secretKey, auth.UserID.String(), s.tokenTTL)
	if err != nil {
		log.ErrorWithContext(ctx, "Error creating token: %v", err)
		return nil, err
	}

	return &models.AuthBody{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
