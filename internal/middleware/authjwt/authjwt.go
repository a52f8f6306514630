package authjwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/loftwire/loftwire-api/internal/auth/tokens"
	"github.com/loftwire/loftwire-api/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// SecretKey is the HMAC secret used to validate HS256 tokens.
	SecretKey string
}

// New creates a middleware handler that requires a valid bearer token and
// stores the authenticated UserContext in c.Locals under types.UserCtxName.
func New(cfg Config) fiber.Handler {
	secret := []byte(cfg.SecretKey)

	return func(c *fiber.Ctx) error {
		tokenString := extractBearerToken(c.Get(types.HeaderAuthorization))
		if tokenString == "" {
			return types.Failure(c, http.StatusUnauthorized, "Missing or invalid bearer token")
		}

		claims, err := tokens.Validate(secret, tokenString)
		if err != nil {
			return types.Failure(c, http.StatusUnauthorized, "Invalid token")
		}

		userID, err := uuid.FromString(claims.Subject)
		if err != nil {
			return types.Failure(c, http.StatusUnauthorized, "Invalid token subject")
		}

		c.Locals(types.UserCtxName, types.UserContext{UserID: userID})
		return c.Next()
	}
}

func extractBearerToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, types.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, types.BearerPrefix))
}
