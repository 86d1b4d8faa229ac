// Package sanitize provides text cleanup utilities for formatted output.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRegex matches runs of Unicode whitespace
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripWhitespace removes all whitespace characters from a string.
// Formatted phone numbers embed spaces per national conventions; some
// consumers (dialers, dedup keys) need the compact form.
func StripWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}

// CollapseWhitespace trims a string and collapses interior whitespace runs
// to a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
