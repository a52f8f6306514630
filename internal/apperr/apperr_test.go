package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrValidation, http.StatusBadRequest},
		{"empty file data", ErrInvalidFileData, http.StatusBadRequest},
		{"size exceeded", ErrFileSizeExceeded, http.StatusBadRequest},
		{"bad file name", ErrInvalidFileName, http.StatusBadRequest},
		{"bad extension", ErrUnsupportedFileExtension, http.StatusBadRequest},
		{"missing credentials", ErrMissingCredentials, http.StatusBadRequest},
		{"wrong credentials", ErrWrongCredentials, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"timeout", ErrRequestTimeout, http.StatusRequestTimeout},
		{"database", ErrDatabase, http.StatusInternalServerError},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"token creation", ErrTokenCreation, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestWrapKeepsSentinelInChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrDatabase, cause)

	assert.True(t, errors.Is(err, ErrDatabase))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapNilCauseReturnsSentinel(t *testing.T) {
	assert.Equal(t, ErrNotFound, Wrap(ErrNotFound, nil))
}

func TestWrapfFormatsDetail(t *testing.T) {
	err := Wrapf(ErrValidation, "invalid status: %s", "parked")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "invalid status: parked")
}

func TestWrappedChainsSurviveDoubleWrap(t *testing.T) {
	inner := Wrap(ErrNotFound, fmt.Errorf("row missing"))
	outer := fmt.Errorf("delete file: %w", inner)

	assert.Equal(t, http.StatusNotFound, StatusCode(outer))
}
