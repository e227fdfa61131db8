// Package pnr issues and validates booking locators. A locator is a 10-digit
// numeric string; uniqueness is enforced by the store, so callers must
// regenerate when an insert reports a collision.
package pnr

import (
	"math/rand/v2"
	"strconv"
)

const (
	min    = 1_000_000_000
	max    = 9_999_999_999
	length = 10
)

// Generate returns a fresh 10-digit locator drawn uniformly from
// [1000000000, 9999999999]. Generation never fails.
func Generate() string {
	number := min + rand.Int64N(max-min+1)

	return strconv.FormatInt(number, 10)
}

// IsValid reports whether code is exactly ten ASCII digits. No sign, no
// whitespace, nothing else.
func IsValid(code string) bool {
	if len(code) != length {
		return false
	}

	for _, char := range code {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
