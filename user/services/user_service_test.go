package services

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	filemodels "github.com/loftwire/loftwire-api/file/models"
	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/types"
	"github.com/loftwire/loftwire-api/user/models"
	"github.com/loftwire/loftwire-api/user/repository"
)

func newMocks() (*MockUserRepository, *MockAuthRepository, *MockFileService, UserService) {
	repo := new(MockUserRepository)
	authRepo := new(MockAuthRepository)
	fileSvc := new(MockFileService)
	return repo, authRepo, fileSvc, NewUserService(repo, authRepo, fileSvc)
}

func testUserCtx() *types.UserContext {
	return &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
}

func TestCreateUser(t *testing.T) {
	req := &models.CreateUserRequest{Username: "alice", Email: "alice@example.com"}

	t.Run("Success", func(t *testing.T) {
		repo, _, _, svc := newMocks()
		userCtx := testUserCtx()

		created := &models.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Create", mock.Anything, req, userCtx.UserID.String()).Return(created, nil)

		user, err := svc.CreateUser(context.Background(), req, nil, userCtx)
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Nil(t, user.ProfilePicture)
	})

	t.Run("WithProfilePicture", func(t *testing.T) {
		repo, _, fileSvc, svc := newMocks()
		userCtx := testUserCtx()

		created := &models.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
		picture := &filemodels.Upload{
			ContentType:      "image/png",
			OriginalFilename: "avatar.png",
			Data:             []byte("png"),
		}
		stored := &filemodels.File{FileURL: "http://localhost:3000/private/profile_picture/avatar.png"}

		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Create", mock.Anything, req, userCtx.UserID.String()).Return(created, nil)
		fileSvc.On("ProcessUpload", mock.Anything, picture,
			uuid.NullUUID{UUID: created.ID, Valid: true},
			filemodels.FileTypeProfilePicture, userCtx.UserID.String()).Return(stored, nil)

		user, err := svc.CreateUser(context.Background(), req, picture, userCtx)
		require.NoError(t, err)
		require.NotNil(t, user.ProfilePicture)
		assert.Equal(t, stored.FileURL, *user.ProfilePicture)
		fileSvc.AssertExpectations(t)
	})

	t.Run("UploadFailureAborts", func(t *testing.T) {
		repo, _, fileSvc, svc := newMocks()
		userCtx := testUserCtx()

		created := &models.User{ID: uuid.Must(uuid.NewV4())}
		picture := &filemodels.Upload{OriginalFilename: "avatar.exe", Data: []byte("x")}

		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Create", mock.Anything, req, userCtx.UserID.String()).Return(created, nil)
		fileSvc.On("ProcessUpload", mock.Anything, picture, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperr.ErrUnsupportedFileExtension)

		_, err := svc.CreateUser(context.Background(), req, picture, userCtx)
		assert.ErrorIs(t, err, apperr.ErrUnsupportedFileExtension)
	})

	t.Run("UsernameTooLong", func(t *testing.T) {
		_, _, _, svc := newMocks()

		long := &models.CreateUserRequest{Username: strings.Repeat("a", 65), Email: "a@b.co"}
		_, err := svc.CreateUser(context.Background(), long, nil, testUserCtx())
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		_, _, _, svc := newMocks()

		bad := &models.CreateUserRequest{Username: "alice", Email: "not-an-email"}
		_, err := svc.CreateUser(context.Background(), bad, nil, testUserCtx())
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestQueryUsers(t *testing.T) {
	t.Run("FilterByUsername", func(t *testing.T) {
		repo, _, _, svc := newMocks()

		expected := []*models.User{{Username: "alice"}}
		repo.On("Find", mock.Anything, repository.UserFilter{Username: "alice"}, 0, 0).Return(expected, nil)

		users, err := svc.QueryUsers(context.Background(), &models.UserQuery{Username: "alice"})
		require.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("InvalidIDFilter", func(t *testing.T) {
		_, _, _, svc := newMocks()

		_, err := svc.QueryUsers(context.Background(), &models.UserQuery{ID: "nope"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestUpdateUser(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	req := &models.UpdateUserRequest{Username: "bob", Email: "bob@example.com"}

	t.Run("Success", func(t *testing.T) {
		repo, _, _, svc := newMocks()
		userCtx := testUserCtx()

		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Update", mock.Anything, id, req, userCtx.UserID.String()).Return(true, nil)
		repo.On("FindByID", mock.Anything, id).Return(&models.User{ID: id, Username: "bob"}, nil)

		user, err := svc.UpdateUser(context.Background(), id, req, userCtx)
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, _, _, svc := newMocks()

		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Update", mock.Anything, id, req, mock.Anything).Return(false, nil)

		_, err := svc.UpdateUser(context.Background(), id, req, testUserCtx())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	t.Run("Success", func(t *testing.T) {
		repo, authRepo, _, svc := newMocks()

		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Delete", mock.Anything, id).Return(true, nil)
		authRepo.On("DeleteByUserID", mock.Anything, id).Return(true, nil)

		err := svc.DeleteUser(context.Background(), id)
		require.NoError(t, err)
		authRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, authRepo, _, svc := newMocks()

		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("Delete", mock.Anything, id).Return(false, nil)

		err := svc.DeleteUser(context.Background(), id)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		authRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	})
}
