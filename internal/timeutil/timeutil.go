package timeutil

import "time"

// EqualInstant compares two optional calendar values by instant, treating
// two absent values as equal.
func EqualInstant(a, b *time.Time) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}

// Coalesce returns the first non-nil value, or nil when both are absent.
func Coalesce(preferred, fallback *time.Time) *time.Time {
	if preferred != nil {
		return preferred
	}
	return fallback
}
