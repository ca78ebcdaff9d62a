package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
)

func errorResponseFor(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return rec.Code, body
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	status, body := errorResponseFor(t, apperrors.ErrPublicationNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	assert.Equal(t, "publication not found", body.Error.Message)
	assert.False(t, body.Success)
}

func TestHandleAPIErrorConflict(t *testing.T) {
	status, body := errorResponseFor(t, apperrors.NewConflictError("a book with this ISBN already exists"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	assert.Equal(t, "a book with this ISBN already exists", body.Error.Message)
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	status, body := errorResponseFor(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, body.Error.Code)
	assert.Equal(t, "Invalid email or password", body.Error.Message)
}

func TestHandleAPIErrorValidation(t *testing.T) {
	status, body := errorResponseFor(t, apperrors.NewValidationError("filing_date must be a YYYY-MM-DD date"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "filing_date must be a YYYY-MM-DD date", body.Error.Message)
}

func TestHandleAPIErrorUnknown(t *testing.T) {
	status, body := errorResponseFor(t, errors.New("pg connection reset"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
	// internal detail must not leak into the response
	assert.Equal(t, "Internal server error", body.Error.Message)
}
