package utils

import (
	"strings"
	"unicode"
)

// NormalizeLocation lower-cases a location name and strips all whitespace,
// so "New York" and "newyork" share a key.
func NormalizeLocation(location string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, location)
}
