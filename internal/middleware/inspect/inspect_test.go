package inspect

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftwire/loftwire-api/internal/pkg/content"
)

func newTestApp(t *testing.T, verboseBody bool) *fiber.App {
	t.Helper()
	patterns, err := content.CompilePatterns(`<script,javascript:,drop\s+table`)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(New(Config{Patterns: patterns, VerboseBody: verboseBody}))
	app.All("/echo", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestCleanRequestPasses(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/echo?name=alice", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestForbiddenQueryBlocked(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/echo?q=%3Cscript%3Ealert(1)%3C/script%3E", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestForbiddenQueryCaseInsensitive(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/echo?q=DROP%20TABLE%20users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBodyNotScannedByDefault(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("<script>alert(1)</script>"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestForbiddenBodyBlockedWhenVerbose(t *testing.T) {
	app := newTestApp(t, true)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("javascript:void(0)"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMultipartBodySkippedWhenVerbose(t *testing.T) {
	app := newTestApp(t, true)

	body := "--x\r\nContent-Disposition: form-data; name=\"f\"\r\n\r\n<script>\r\n--x--\r\n"
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, "multipart/form-data; boundary=x")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
