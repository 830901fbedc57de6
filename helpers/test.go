package helpers

import "time"

// TestNow is the fixed wall clock of unit tests.
func TestNow() time.Time {
	return time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
}
