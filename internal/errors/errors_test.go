package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "unauthenticated",
			err:        ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
			wantMsg:    "could not validate credentials",
		},
		{
			name:       "inactive user looks like unauthenticated",
			err:        fmt.Errorf("resolve: %w", ErrInactiveUser),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
			wantMsg:    "could not validate credentials",
		},
		{
			name:       "invalid credentials",
			err:        ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "not found names entity and id",
			err:        fmt.Errorf("create pet: %w", NotFound("tutor", 999999)),
			wantStatus: http.StatusNotFound,
			wantCode:   "TUTOR_NOT_FOUND",
			wantMsg:    "tutor with id 999999 not found",
		},
		{
			name:       "conflict names field",
			err:        Conflict("license_number", "SP-12345"),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantMsg:    `license_number "SP-12345" already exists`,
		},
		{
			name:       "in use",
			err:        &InUseError{Entity: "clinic", ID: 1},
			wantStatus: http.StatusConflict,
			wantCode:   "RESOURCE_IN_USE",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, httpErr.Message)
			}
		})
	}
}

func TestMapErrorToHTTP_ValidationFields(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"name":     "is required",
		"tutor_id": "is required",
	}}

	httpErr := MapErrorToHTTP(err)
	resp := httpErr.ToErrorResponse()

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Len(t, resp.Fields, 2)
	assert.Equal(t, "is required", resp.Fields["tutor_id"])
}

func TestHTTPError_Unauthorized(t *testing.T) {
	assert.True(t, MapErrorToHTTP(ErrUnauthenticated).Unauthorized())
	assert.False(t, MapErrorToHTTP(NotFound("pet", 1)).Unauthorized())
}
