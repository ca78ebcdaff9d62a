package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseSkipLimitDefaults(t *testing.T) {
	skip, limit := ParseSkipLimit(ctxWithQuery(t, ""))
	assert.Equal(t, 0, skip)
	assert.Equal(t, DefaultLimit, limit)
}

func TestParseSkipLimitValues(t *testing.T) {
	skip, limit := ParseSkipLimit(ctxWithQuery(t, "skip=20&limit=50"))
	assert.Equal(t, 20, skip)
	assert.Equal(t, 50, limit)
}

func TestParseSkipLimitInvalid(t *testing.T) {
	cases := []string{
		"skip=-5&limit=0",
		"skip=abc&limit=xyz",
		"skip=3.5&limit=-10",
	}
	for _, q := range cases {
		skip, limit := ParseSkipLimit(ctxWithQuery(t, q))
		assert.Equal(t, 0, skip, q)
		assert.Equal(t, DefaultLimit, limit, q)
	}
}

func TestParseSkipLimitCapsOversized(t *testing.T) {
	skip, limit := ParseSkipLimit(ctxWithQuery(t, "skip=0&limit=150"))
	assert.Equal(t, 0, skip)
	assert.Equal(t, MaxLimit, limit)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-1))
	assert.Equal(t, MaxLimit, ClampLimit(MaxLimit+1))
	assert.Equal(t, MaxLimit, ClampLimit(1000))
	assert.Equal(t, 25, ClampLimit(25))
	assert.Equal(t, MaxLimit, ClampLimit(MaxLimit))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
}
