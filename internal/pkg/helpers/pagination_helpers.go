package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseSkipLimit extracts offset pagination parameters from the request.
// skip is 0-based; invalid or negative values fall back to 0. limit falls
// back to DefaultLimit when missing or invalid and is capped at MaxLimit.
func ParseSkipLimit(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}

	return skip, ClampLimit(limit)
}

// ClampLimit normalizes a page size to the [1, MaxLimit] range.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// TotalPages computes the page count for a total item count and page size.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
