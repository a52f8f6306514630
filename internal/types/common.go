package types

import uuid "github.com/gofrs/uuid"

// HTTP header constants.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUID           = "uid"
)

// Authentication constants.
const (
	BearerPrefix = "Bearer "
	// UserCtxName is the fiber locals key the JWT middleware stores the
	// authenticated UserContext under.
	UserCtxName = "user"
)

// UserContext carries the identity decoded from a bearer token. Handlers use
// it to stamp created_by/modified_by on mutations.
type UserContext struct {
	UserID uuid.UUID
}
