package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResourceName holds the naming forms derived from the raw resource name the
// operator typed in. Every renderer in the template catalog consumes it.
type ResourceName struct {
	Raw         string // input as typed
	Singular    string // lower-cased, trailing "s" dropped
	Capitalized string // Singular with the first rune upper-cased
}

// Normalize derives the canonical name forms from raw. Blank input yields
// empty forms rather than an error.
func Normalize(raw string) ResourceName {
	singular := Singularize(strings.ToLower(strings.TrimSpace(raw)))
	return ResourceName{
		Raw:         raw,
		Singular:    singular,
		Capitalized: Capitalize(singular),
	}
}

// Singularize drops a single trailing "s".
//
// Irregular plurals are not handled: "categories" becomes "categorie" and
// "status" becomes "statu".
func Singularize(s string) string {
	return strings.TrimSuffix(s, "s")
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsEmpty reports whether normalization produced no usable name.
func (n ResourceName) IsEmpty() bool {
	return n.Singular == ""
}
