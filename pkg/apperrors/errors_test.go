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

func TestMarshalHidesWrappedError(t *testing.T) {
	appErr := Wrap(errors.New("pq: secret dsn details"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret dsn")
	assert.Contains(t, string(raw), "Internal server error")
}

func TestAsAppErrorUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrJobNotFound)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Job not found", appErr.Message)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestDomainErrorContracts(t *testing.T) {
	// These message and status pairings are part of the API surface.
	tests := []struct {
		err     *AppError
		message string
		code    int
	}{
		{ErrJobNotFound, "Job not found", http.StatusNotFound},
		{ErrNotASitter, "Only pet sitters can apply for jobs", http.StatusForbidden},
		{ErrJobNotAvailable, "This job is no longer available", http.StatusBadRequest},
		{ErrOwnJobApplication, "You cannot apply to your own job", http.StatusBadRequest},
		{ErrAlreadyApplied, "You have already applied for this job", http.StatusBadRequest},
		{ErrJobNotOpenForUpdate, "The job status must be 'open' to update the application.", http.StatusBadRequest},
		{ErrMissingApplicationStatus, "New status is required for the update", http.StatusBadRequest},
		{ErrNotAuthenticated, "You're not logged in.", http.StatusUnauthorized},
		{ErrUnsupportedArea, "Service is only available in New York City, USA", http.StatusBadRequest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.message, tt.err.Message)
		assert.Equal(t, tt.code, tt.err.HTTPCode)
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := map[string]string{"email": "email must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}
