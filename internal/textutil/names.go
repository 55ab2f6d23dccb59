package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NameKey returns the canonical comparison key for a file or folder name.
// Names that differ only in Unicode normalization form share a key.
func NameKey(name string) string {
	return norm.NFC.String(name)
}

// IsAlphanumeric reports whether value is non-empty and made only of Unicode
// letters and digits.
func IsAlphanumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range norm.NFC.String(value) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Underscore replaces every space in name with an underscore.
func Underscore(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// JoinNames renders names as a comma separated list.
func JoinNames(names []string) string {
	return strings.Join(names, ", ")
}
