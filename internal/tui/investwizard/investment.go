package investwizard

import (
	"strings"
	"time"

	"github.com/mark3labs/investflow/internal/flow"
)

// Investment collects what the investor entered along the way. Step bodies
// share one Investment; the controller never sees it.
type Investment struct {
	Method                flow.TransferMethod
	FullName              string
	DateOfBirth           time.Time
	Country               string
	PPMAcknowledged       bool
	LLCSignature          string
	SubscriptionSignature string
}

// dobLayout is the accepted date of birth format.
const dobLayout = "2006-01-02"

// parseDOB parses a date of birth. Dates in the future are rejected.
func parseDOB(s string, now time.Time) (time.Time, bool) {
	t, err := time.Parse(dobLayout, strings.TrimSpace(s))
	if err != nil || t.After(now) {
		return time.Time{}, false
	}
	return t, true
}

// validSignature reports whether a typed signature is acceptable.
func validSignature(s string) bool {
	return strings.TrimSpace(s) != ""
}

// orDash stands in for values the investor has not entered.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
