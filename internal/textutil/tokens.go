package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordPattern matches a maximal run of lowercase ASCII letters, digits and apostrophes.
var WordPattern = regexp.MustCompile(`[a-z0-9']+`)

// Tokenize lowercases text and returns its word runs in order.
func Tokenize(text string) []string {
	return WordPattern.FindAllString(strings.ToLower(text), -1)
}

// CharLen returns the length of s in characters rather than bytes.
func CharLen(s string) int {
	return utf8.RuneCountInString(s)
}
