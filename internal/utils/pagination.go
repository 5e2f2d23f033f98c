// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// BoundedInt parses s as a base-10 integer constrained to [min, max].
// An empty string yields the default. The second result is false when s is
// present but not an integer or out of bounds — callers treat that as a
// validation failure rather than silently substituting the default.
//
// Example:
//
//	n, ok := utils.BoundedInt("42", 20, 1, 100) // 42, true
//	n, ok = utils.BoundedInt("", 20, 1, 100)    // 20, true
//	n, ok = utils.BoundedInt("x", 20, 1, 100)   // 0, false
//	n, ok = utils.BoundedInt("500", 20, 1, 100) // 0, false
func BoundedInt(s string, def, min, max int) (int, bool) {
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}
