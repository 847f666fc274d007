package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrNotFound(nil, "job", "Job not found").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrConflict(nil, "application", "Already applied").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrInvalidStatus("application", "bad status").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrInvalidOperation("application", "self apply").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("nope").HTTPCode)
	assert.Equal(t, http.StatusRequestEntityTooLarge, ErrFileTooLarge.HTTPCode)
	assert.Equal(t, http.StatusUnsupportedMediaType, ErrInvalidFileType.HTTPCode)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := ErrConflict(errors.New("pq: duplicate key value"), "application", "Already applied")

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.NotContains(t, string(data), "duplicate key")
	assert.Equal(t, "Already applied", out["message"])
	assert.NotContains(t, out, "http_code")
}

func TestUnwrapAndAs(t *testing.T) {
	cause := errors.New("record not found")
	appErr := ErrNotFound(cause, "job", "Job not found")
	wrapped := fmt.Errorf("fetch job: %w", appErr)

	assert.ErrorIs(t, wrapped, cause)

	var target *AppError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "Job not found", target.Message)
}

func TestWithDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "must be a valid email"})

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "must be a valid email")
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}
