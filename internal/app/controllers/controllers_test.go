package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

func idParamContext(t *testing.T, raw string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Params = gin.Params{{Key: "id", Value: raw}}
	return c, rec
}

func TestParseIDParamValid(t *testing.T) {
	c, _ := idParamContext(t, "42")
	id, ok := parseIDParam(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestParseIDParamRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "", "0", "-3", "4.5"} {
		c, rec := idParamContext(t, raw)
		_, ok := parseIDParam(c)
		require.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), raw)
		require.NotNil(t, body.Error)
		assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
		assert.Equal(t, "id", body.Error.Field)
	}
}
