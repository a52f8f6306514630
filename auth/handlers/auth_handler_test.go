package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loftwire/loftwire-api/auth/models"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/types"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, payload *models.RegisterPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, payload *models.AuthPayload) (*models.AuthBody, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthBody), args.Error(1)
}

func newTestApp(svc *MockAuthService) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(svc)
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, types.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope types.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestLoginSuccess(t *testing.T) {
	svc := new(MockAuthService)
	app := newTestApp(svc)

	userID := uuid.Must(uuid.NewV4())
	svc.On("Login", mock.Anything, &models.AuthPayload{
		ClientID:     userID.String(),
		ClientSecret: "s3cret",
	}).Return(&models.AuthBody{AccessToken: "tok", TokenType: "Bearer"}, nil)

	resp, envelope := postJSON(t, app, "/auth/login",
		`{"client_id":"`+userID.String()+`","client_secret":"s3cret"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tok", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
}

func TestLoginErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"MissingCredentials", apperr.ErrMissingCredentials, http.StatusBadRequest},
		{"UserNotFound", apperr.ErrUserNotFound, http.StatusNotFound},
		{"WrongCredentials", apperr.ErrWrongCredentials, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockAuthService)
			app := newTestApp(svc)

			svc.On("Login", mock.Anything, mock.Anything).Return(nil, tc.serviceErr)

			resp, envelope := postJSON(t, app, "/auth/login", `{"client_id":"x","client_secret":"y"}`)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantStatus, envelope.Status)
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	svc := new(MockAuthService)
	app := newTestApp(svc)

	resp, _ := postJSON(t, app, "/auth/login", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestRegisterSuccess(t *testing.T) {
	svc := new(MockAuthService)
	app := newTestApp(svc)

	userID := uuid.Must(uuid.NewV4())
	svc.On("Register", mock.Anything, &models.RegisterPayload{
		UserID:   userID.String(),
		Password: "s3cret",
	}).Return(nil)

	resp, _ := postJSON(t, app, "/auth/register",
		`{"user_id":"`+userID.String()+`","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
