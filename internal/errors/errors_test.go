package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeValidation, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
		{Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_Is_MatchesByCode(t *testing.T) {
	err := NotFound("heritage entry 999 not found")
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrConflict))
}

func TestError_Is_ThroughWrapping(t *testing.T) {
	inner := Conflict("assignment already persisted")
	wrapped := fmt.Errorf("assign archetype: %w", inner)

	assert.True(t, Is(wrapped, ErrConflict))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeInternal, "persist profile")

	assert.Equal(t, cause, Unwrap(err))
	assert.Contains(t, err.Error(), "disk full")
}

func TestValidationWithDetails(t *testing.T) {
	details := map[string]string{"hometown": "is required"}
	err := ValidationWithDetails("validation failed", details)

	var domainErr *Error
	require.True(t, As(err, &domainErr))
	assert.Equal(t, CodeValidation, domainErr.Code)
	assert.Equal(t, details, domainErr.Details)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
}

func TestWithDetails_DoesNotMutateOriginal(t *testing.T) {
	base := NotFound("missing")
	withDetails := base.WithDetails("extra")

	assert.Nil(t, base.Details)
	assert.Equal(t, "extra", withDetails.Details)
}
