package multipart

import (
	"bytes"
	stdmultipart "mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/pkg/content"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	patterns, err := content.CompilePatterns(`<script,javascript:,drop\s+table`)
	require.NoError(t, err)
	return Options{Patterns: patterns}
}

func buildForm(t *testing.T, fields map[string]string, files map[string][]byte) *stdmultipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := stdmultipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for filename, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r := stdmultipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	return form
}

func TestParseFieldsAndFile(t *testing.T) {
	form := buildForm(t,
		map[string]string{"username": "alice", "email": "alice@example.com"},
		map[string][]byte{"avatar.png": []byte("\x89PNG\r\n\x1a\nrest")},
	)

	parsed, err := Parse(form, testOptions(t))
	require.NoError(t, err)

	username, ok := parsed.Field("username")
	assert.True(t, ok)
	assert.Equal(t, "alice", username)

	file := parsed.File("file")
	require.NotNil(t, file)
	assert.Equal(t, "avatar.png", file.Filename)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\nrest"), file.Data)
	// octet-stream is replaced by sniffed type
	assert.True(t, strings.HasPrefix(file.ContentType, "image/png"))
}

func TestParseRejectsForbiddenFieldValue(t *testing.T) {
	form := buildForm(t, map[string]string{"bio": "<script>alert(1)</script>"}, nil)

	_, err := Parse(form, testOptions(t))
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestParseRejectsForbiddenFilename(t *testing.T) {
	form := buildForm(t, nil, map[string][]byte{"<script>.png": []byte("x")})

	_, err := Parse(form, testOptions(t))
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestParseRejectsTraversalFilename(t *testing.T) {
	form := buildForm(t, nil, map[string][]byte{"..png": []byte("x")})

	_, err := Parse(form, testOptions(t))
	assert.ErrorIs(t, err, apperr.ErrInvalidFileName)
}

func TestParseRejectsDisallowedExtension(t *testing.T) {
	opts := testOptions(t)
	opts.AllowFilename = func(name string) bool {
		return strings.HasSuffix(name, ".png")
	}
	form := buildForm(t, nil, map[string][]byte{"payload.exe": []byte("x")})

	_, err := Parse(form, opts)
	assert.ErrorIs(t, err, apperr.ErrUnsupportedFileExtension)
}

func TestParseRejectsOversizedFile(t *testing.T) {
	opts := testOptions(t)
	opts.MaxFileSize = 4
	form := buildForm(t, nil, map[string][]byte{"big.png": []byte("0123456789")})

	_, err := Parse(form, opts)
	assert.ErrorIs(t, err, apperr.ErrFileSizeExceeded)
}
