// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	uuid "github.com/gofrs/uuid"
)

// UserAuth is one credential row. Passwords are stored as bcrypt hashes only.
type UserAuth struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

// RegisterPayload is the request body for credential registration.
type RegisterPayload struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// AuthPayload is the request body for login.
type AuthPayload struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// AuthBody is the response body for a successful login.
type AuthBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
