// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// User is one account row. ProfilePicture carries the URL of the most recent
// profile picture file owned by the user, when one exists.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	CreatedBy      *string   `json:"created_by,omitempty" db:"created_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	ModifiedBy     *string   `json:"modified_by,omitempty" db:"modified_by"`
	ModifiedAt     time.Time `json:"modified_at" db:"modified_at"`
}

// CreateUserRequest is the service-level payload for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest is the service-level payload for updating a user.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserQuery holds the optional list filters, decoded from the query string.
type UserQuery struct {
	ID       string `schema:"id"`
	Username string `schema:"username"`
	Email    string `schema:"email"`
	Limit    int    `schema:"limit"`
	Offset   int    `schema:"offset"`
}
