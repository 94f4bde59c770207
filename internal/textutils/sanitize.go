// Package textutils provides text sanitization and extraction utilities for
// the hand-pasted payment tables.
package textutils

import (
	"regexp"
	"strings"
)

var (
	lineBreakRe  = regexp.MustCompile(`\r?\n`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

// Sanitize replaces line breaks with single spaces and trims the result.
// Multi-line cells survive the paste from the source sheets; the bank
// format is strictly one line per field.
func Sanitize(s string) string {
	return strings.TrimSpace(lineBreakRe.ReplaceAllString(s, " "))
}

// StripSpaces removes all whitespace from a value. Account numbers are
// compared and emitted in this canonical form.
func StripSpaces(s string) string {
	return whitespaceRe.ReplaceAllString(s, "")
}
