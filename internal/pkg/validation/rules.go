package validation

import (
	"regexp"
	"time"
)

// Validation rule patterns
var (
	// Date fields travel as bare YYYY-MM-DD strings.
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// ISBN-10 or ISBN-13, digits and hyphens only.
	ISBNPattern = `^[0-9][0-9\-]{8,15}[0-9Xx]$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Date *regexp.Regexp
	ISBN *regexp.Regexp
}{
	Date: regexp.MustCompile(DatePattern),
	ISBN: regexp.MustCompile(ISBNPattern),
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
// The empty string is accepted; optional date fields store it as "not set".
func IsValidDate(s string) bool {
	if s == "" {
		return true
	}
	if !CompiledPatterns.Date.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidISBN reports whether s looks like an ISBN. The empty string is
// accepted; ISBN is optional on books.
func IsValidISBN(s string) bool {
	if s == "" {
		return true
	}
	return CompiledPatterns.ISBN.MatchString(s)
}
