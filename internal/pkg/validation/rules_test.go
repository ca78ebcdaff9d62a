package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{"", "2024-01-31", "1999-12-01", "2024-02-29"}
	for _, s := range valid {
		assert.True(t, IsValidDate(s), s)
	}

	invalid := []string{
		"2024-13-01",
		"2024-02-30",
		"2023-02-29",
		"24-01-01",
		"2024/01/31",
		"2024-01-31T00:00:00Z",
		"January 31, 2024",
	}
	for _, s := range invalid {
		assert.False(t, IsValidDate(s), s)
	}
}

func TestIsValidISBN(t *testing.T) {
	valid := []string{
		"",
		"0306406152",
		"0-306-40615-2",
		"978-3-16-148410-0",
		"9783161484100",
		"080442957X",
	}
	for _, s := range valid {
		assert.True(t, IsValidISBN(s), s)
	}

	invalid := []string{
		"12345",
		"ISBN 978-3-16-148410-0",
		"978 3 16 148410 0",
		"abcdefghij",
	}
	for _, s := range invalid {
		assert.False(t, IsValidISBN(s), s)
	}
}
