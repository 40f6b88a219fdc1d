package testfixtures

import "time"

// Fixed investor values for deterministic tests
const (
	FixedSessionName = "test-session"
	FixedName        = "Ada Lovelace"
	FixedDOB         = "1985-12-10"
	FixedCountry     = "United Kingdom"
	FixedSignature   = "Ada Lovelace"
)

var (
	// FixedTime is "now" for date validation in tests.
	FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
)
