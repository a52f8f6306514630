package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loftwire/loftwire-api/file/models"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/types"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) ProcessUpload(ctx context.Context, upload *models.Upload, userID uuid.NullUUID, fileType models.FileType, modifiedBy string) (*models.File, error) {
	args := m.Called(ctx, upload, userID, fileType, modifiedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.File), args.Error(1)
}

func (m *MockFileService) GetFileMetadata(ctx context.Context, id uuid.UUID) (*models.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.File), args.Error(1)
}

func (m *MockFileService) GetFileByUser(ctx context.Context, userID uuid.UUID) (*models.File, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.File), args.Error(1)
}

func (m *MockFileService) DeleteFile(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileService) OpenFile(ctx context.Context, file *models.File) (afero.File, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(afero.File), args.Error(1)
}

func newTestApp(svc *MockFileService) *fiber.App {
	app := fiber.New()
	h := NewFileHandler(svc)
	app.Get("/file/:fileId", func(c *fiber.Ctx) error {
		c.Locals(types.UserCtxName, types.UserContext{UserID: uuid.Must(uuid.NewV4())})
		return h.ServeFile(c)
	})
	app.Delete("/file/:fileId", func(c *fiber.Ctx) error {
		c.Locals(types.UserCtxName, types.UserContext{UserID: uuid.Must(uuid.NewV4())})
		return h.DeleteFile(c)
	})
	return app
}

func TestServeFile(t *testing.T) {
	fileID := uuid.Must(uuid.NewV4())
	stored := &models.File{
		ID:               fileID,
		FileName:         "photo(1).jpg",
		OriginFileName:   "photo.jpg",
		FileRelativePath: "profile_picture/photo(1).jpg",
		ContentType:      "image/jpeg",
		FileSize:         9,
	}

	t.Run("StreamsAttachment", func(t *testing.T) {
		svc := new(MockFileService)
		app := newTestApp(svc)

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/photo.jpg", []byte("jpegbytes"), 0o644))
		f, err := fs.Open("/photo.jpg")
		require.NoError(t, err)

		svc.On("GetFileMetadata", mock.Anything, fileID).Return(stored, nil)
		svc.On("OpenFile", mock.Anything, stored).Return(f, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/file/"+fileID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, `attachment; filename="photo.jpg"`, resp.Header.Get(fiber.HeaderContentDisposition))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpegbytes"), body)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockFileService)
		app := newTestApp(svc)

		svc.On("GetFileMetadata", mock.Anything, fileID).Return(nil, apperr.ErrNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/file/"+fileID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("MalformedID", func(t *testing.T) {
		svc := new(MockFileService)
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/file/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "GetFileMetadata", mock.Anything, mock.Anything)
	})
}

func TestDeleteFileHandler(t *testing.T) {
	fileID := uuid.Must(uuid.NewV4())

	t.Run("Success", func(t *testing.T) {
		svc := new(MockFileService)
		app := newTestApp(svc)

		svc.On("DeleteFile", mock.Anything, fileID).Return(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/file/"+fileID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockFileService)
		app := newTestApp(svc)

		svc.On("DeleteFile", mock.Anything, fileID).Return(apperr.ErrNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/file/"+fileID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
