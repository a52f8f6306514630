package inspect

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/loftwire/loftwire-api/internal/pkg/content"
	"github.com/loftwire/loftwire-api/internal/pkg/log"
	"github.com/loftwire/loftwire-api/internal/types"
)

// Config defines the config for the request inspection middleware.
type Config struct {
	// Patterns is the compiled forbidden pattern set.
	Patterns *content.PatternSet
	// VerboseBody also scans the raw request body. Multipart bodies are
	// skipped here; their parts are inspected during multipart parsing.
	VerboseBody bool
}

// New creates a middleware that rejects requests whose query string (and
// optionally body) matches a forbidden pattern.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := string(c.Request().URI().QueryString())
		if query != "" {
			decoded, err := url.QueryUnescape(query)
			if err != nil {
				decoded = query
			}
			if cfg.Patterns.Matches(decoded) {
				log.WarnWithContext(c.UserContext(), "Forbidden pattern in query string: %s %s", c.Method(), c.Path())
				return types.Failure(c, http.StatusForbidden, "Request blocked")
			}
		}

		if cfg.VerboseBody && len(c.Body()) > 0 && !isMultipart(c) {
			if cfg.Patterns.Matches(string(c.Body())) {
				log.WarnWithContext(c.UserContext(), "Forbidden pattern in request body: %s %s", c.Method(), c.Path())
				return types.Failure(c, http.StatusForbidden, "Request blocked")
			}
		}

		return c.Next()
	}
}

func isMultipart(c *fiber.Ctx) bool {
	contentType := c.Get(fiber.HeaderContentType)
	return len(contentType) >= len(fiber.MIMEMultipartForm) &&
		contentType[:len(fiber.MIMEMultipartForm)] == fiber.MIMEMultipartForm
}
