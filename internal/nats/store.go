package nats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "investflow_events"
	subjectPrefix = "investflow"

	// Event types
	EventTypeStep    = "step"
	EventTypeControl = "control"
)

// SubjectForSession returns the wildcard subject for every event in a session.
// Example: "investflow.acme-fund.>"
func SubjectForSession(session string) string {
	return fmt.Sprintf("%s.%s.>", subjectPrefix, session)
}

// SubjectForEvent returns the subject one event type of a session publishes on.
// Example: "investflow.acme-fund.step"
func SubjectForEvent(session, eventType string) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, session, eventType)
}

// SessionFromSubject extracts the session token from a journal subject.
func SessionFromSubject(subject string) (string, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) != 3 || parts[0] != subjectPrefix || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// SetupStream creates or updates the journal stream. It captures every
// session with 90-day retention.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   90 * 24 * time.Hour,
	})
}
