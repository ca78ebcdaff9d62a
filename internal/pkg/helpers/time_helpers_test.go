package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDate(t *testing.T) {
	assert.Equal(t, "2024-03-15", TruncateDate("2024-03-15T00:00:00Z"))
	assert.Equal(t, "2024-03-15", TruncateDate("2024-03-15T10:30:00+05:30"))
	assert.Equal(t, "2024-03-15", TruncateDate("2024-03-15"))
	assert.Equal(t, "", TruncateDate(""))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
