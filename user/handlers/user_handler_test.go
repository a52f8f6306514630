package handlers

import (
	"bytes"
	"context"
	stdmultipart "mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	filemodels "github.com/loftwire/loftwire-api/file/models"
	"github.com/loftwire/loftwire-api/internal/pkg/content"
	"github.com/loftwire/loftwire-api/internal/pkg/multipart"
	"github.com/loftwire/loftwire-api/internal/types"
	"github.com/loftwire/loftwire-api/user/models"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest, picture *filemodels.Upload, userCtx *types.UserContext) (*models.User, error) {
	args := m.Called(ctx, req, picture, userCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) QueryUsers(ctx context.Context, q *models.UserQuery) ([]*models.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest, userCtx *types.UserContext) (*models.User, error) {
	args := m.Called(ctx, id, req, userCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestApp(t *testing.T, svc *MockUserService) *fiber.App {
	t.Helper()
	patterns, err := content.CompilePatterns(`<script,javascript:`)
	require.NoError(t, err)

	h := NewUserHandler(svc, multipart.Options{Patterns: patterns})

	app := fiber.New()
	withUser := func(handler fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals(types.UserCtxName, types.UserContext{UserID: uuid.Must(uuid.NewV4())})
			return handler(c)
		}
	}
	app.Get("/user", withUser(h.QueryUsers))
	app.Post("/user", withUser(h.CreateUser))
	app.Get("/user/:userId", withUser(h.GetUser))
	return app
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, fileData []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := stdmultipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if filename != "" {
		part, err := w.CreateFormFile("profile_picture", filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/user", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestCreateUserMultipart(t *testing.T) {
	t.Run("WithoutPicture", func(t *testing.T) {
		svc := new(MockUserService)
		app := newTestApp(t, svc)

		created := &models.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
		svc.On("CreateUser", mock.Anything,
			&models.CreateUserRequest{Username: "alice", Email: "alice@example.com"},
			(*filemodels.Upload)(nil), mock.Anything).Return(created, nil)

		req := multipartRequest(t, map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
		}, "", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("WithPicture", func(t *testing.T) {
		svc := new(MockUserService)
		app := newTestApp(t, svc)

		created := &models.User{ID: uuid.Must(uuid.NewV4())}
		svc.On("CreateUser", mock.Anything, mock.Anything,
			mock.MatchedBy(func(u *filemodels.Upload) bool {
				return u != nil && u.OriginalFilename == "avatar.png" && len(u.Data) > 0
			}), mock.Anything).Return(created, nil)

		req := multipartRequest(t, map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
		}, "avatar.png", []byte("\x89PNG\r\n\x1a\n"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("ForbiddenFieldValue", func(t *testing.T) {
		svc := new(MockUserService)
		app := newTestApp(t, svc)

		req := multipartRequest(t, map[string]string{
			"username": "<script>alert(1)</script>",
			"email":    "alice@example.com",
		}, "", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotMultipart", func(t *testing.T) {
		svc := new(MockUserService)
		app := newTestApp(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewReader([]byte(`{"username":"alice"}`)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestQueryUsersDecoding(t *testing.T) {
	svc := new(MockUserService)
	app := newTestApp(t, svc)

	svc.On("QueryUsers", mock.Anything, &models.UserQuery{
		Username: "alice",
		Limit:    10,
	}).Return([]*models.User{{Username: "alice"}}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user?username=alice&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
