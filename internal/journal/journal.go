// Package journal records wizard sessions as an append-only JetStream event
// log and replays them so an unfinished investment can be resumed.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/logger"
	"github.com/mark3labs/investflow/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// ErrNoSession is returned by Load when a session has no recorded events.
var ErrNoSession = errors.New("journal: no such session")

// DefaultSession names the session used when none is given.
const DefaultSession = "default"

// Control actions
const (
	ActionStepChange       = "change"
	ActionComplete         = "complete"
	ActionDismissRequested = "dismiss_requested"
	ActionDismissCancelled = "dismiss_cancelled"
	ActionDismissed        = "dismissed"
	ActionDetail           = "detail"
)

// DetailTransferMethod is the detail key under which the chosen transfer
// method is recorded. Personal data is never journaled.
const DetailTransferMethod = "transfer_method"

// Event is one entry in the journal.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Session   string          `json:"session"`
	Type      string          `json:"type"`   // step or control
	Action    string          `json:"action"` // change, complete, dismiss_requested, ...
	Meta      json.RawMessage `json:"meta,omitempty"`
}

// stepMeta is the payload of a step change event.
type stepMeta struct {
	From flow.Step `json:"from"`
	To   flow.Step `json:"to"`
}

// detailMeta is the payload of a detail event.
type detailMeta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// State is a session rebuilt by replaying its events in order.
type State struct {
	Session   string
	Step      flow.Step
	Completed bool
	Dismissed bool
	Details   map[string]string
	Events    []Event
}

// Resumable reports whether the session stopped somewhere short of completion.
func (st *State) Resumable() bool {
	return !st.Completed && st.Step.Valid()
}

// Apply folds one event into the state.
func (st *State) Apply(event Event) {
	st.Events = append(st.Events, event)

	switch event.Type {
	case nats.EventTypeStep:
		var meta stepMeta
		if err := json.Unmarshal(event.Meta, &meta); err != nil {
			logger.Warn("Skipping step event %s with bad meta: %v", event.ID, err)
			return
		}
		if !meta.To.Valid() {
			logger.Warn("Skipping step event %s with unknown step %q", event.ID, meta.To)
			return
		}
		st.Step = meta.To
		// A later step change starts a new run or carries on after dismissing.
		st.Dismissed = false
		st.Completed = false
	case nats.EventTypeControl:
		switch event.Action {
		case ActionComplete:
			st.Completed = true
		case ActionDismissed:
			st.Dismissed = true
		case ActionDetail:
			var meta detailMeta
			if err := json.Unmarshal(event.Meta, &meta); err != nil || meta.Key == "" {
				logger.Warn("Skipping detail event %s with bad meta", event.ID)
				return
			}
			if st.Details == nil {
				st.Details = make(map[string]string)
			}
			st.Details[meta.Key] = meta.Value
		}
	}
}

// SessionName turns free text into a subject-safe session token.
func SessionName(raw string) string {
	name := slug.Make(strings.TrimSpace(raw))
	if name == "" {
		return DefaultSession
	}
	return name
}

// Store appends and replays journal events.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStore creates a Store over an already configured stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream}
}

// Append publishes an event on investflow.<session>.<type>. ID and Timestamp
// are filled in when empty.
func (s *Store) Append(ctx context.Context, event Event) (Event, error) {
	if event.Session == "" {
		return event, errors.New("journal: event has no session")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return event, fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := nats.SubjectForEvent(event.Session, event.Type)
	logger.Debug("Publishing event: session=%s type=%s action=%s", event.Session, event.Type, event.Action)

	if _, err := s.js.Publish(ctx, subject, data); err != nil {
		logger.Error("Failed to publish event to subject %s: %v", subject, err)
		return event, fmt.Errorf("failed to publish event: %w", err)
	}
	return event, nil
}

// RecordStep appends a step change.
func (s *Store) RecordStep(ctx context.Context, session string, from, to flow.Step) error {
	meta, err := json.Marshal(stepMeta{From: from, To: to})
	if err != nil {
		return fmt.Errorf("failed to marshal step meta: %w", err)
	}
	_, err = s.Append(ctx, Event{
		Session: session,
		Type:    nats.EventTypeStep,
		Action:  ActionStepChange,
		Meta:    meta,
	})
	return err
}

// RecordControl appends a control event such as completion or dismissal.
func (s *Store) RecordControl(ctx context.Context, session, action string) error {
	_, err := s.Append(ctx, Event{
		Session: session,
		Type:    nats.EventTypeControl,
		Action:  action,
	})
	return err
}

// RecordDetail appends a key/value detail about the session.
func (s *Store) RecordDetail(ctx context.Context, session, key, value string) error {
	meta, err := json.Marshal(detailMeta{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to marshal detail meta: %w", err)
	}
	_, err = s.Append(ctx, Event{
		Session: session,
		Type:    nats.EventTypeControl,
		Action:  ActionDetail,
		Meta:    meta,
	})
	return err
}

// Load replays every event of a session. It returns ErrNoSession when the
// session has never been written.
func (s *Store) Load(ctx context.Context, session string) (*State, error) {
	consumer, err := s.stream.OrderedConsumer(ctx, jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{nats.SubjectForSession(session)},
		DeliverPolicy:  jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	state := &State{Session: session}

	const batchSize = 500
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				continue
			}
			state.Apply(event)
		}

		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed events while loading session %s", malformed, session)
	}
	if len(state.Events) == 0 {
		return nil, ErrNoSession
	}

	logger.Debug("Loaded session %s: %d events, step=%s completed=%t",
		session, len(state.Events), state.Step, state.Completed)
	return state, nil
}

// Sessions lists the sessions that have at least one event, sorted by name.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	info, err := s.stream.Info(ctx, jetstream.WithSubjectFilter(nats.SubjectForSession("*")))
	if err != nil {
		return nil, fmt.Errorf("failed to read stream info: %w", err)
	}

	seen := make(map[string]struct{})
	for subject := range info.State.Subjects {
		if name, ok := nats.SessionFromSubject(subject); ok {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Journal owns the embedded server and connection behind a Store.
type Journal struct {
	server *nats.Embedded
	store  *Store
}

// Open starts the embedded server under dataDir/journal and prepares the
// stream.
func Open(ctx context.Context, dataDir string) (*Journal, error) {
	dir := filepath.Join(dataDir, "journal")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	srv, err := nats.Start(dir)
	if err != nil {
		return nil, fmt.Errorf("starting journal server: %w", err)
	}

	stream, err := srv.Stream(ctx)
	if err != nil {
		_ = srv.Close()
		return nil, fmt.Errorf("setting up journal stream: %w", err)
	}

	return &Journal{server: srv, store: NewStore(srv.JS, stream)}, nil
}

// Store returns the journal's event store.
func (j *Journal) Store() *Store {
	return j.store
}

// Close drains the connection and stops the server.
func (j *Journal) Close() error {
	return j.server.Close()
}

// Recorder binds a Store to a single session.
type Recorder struct {
	store   *Store
	session string
}

// Recorder returns a Recorder writing to session.
func (s *Store) Recorder(session string) *Recorder {
	return &Recorder{store: s, session: session}
}

// Session returns the session the recorder writes to.
func (r *Recorder) Session() string {
	return r.session
}

// RecordStep appends a step change for the bound session.
func (r *Recorder) RecordStep(ctx context.Context, from, to flow.Step) error {
	return r.store.RecordStep(ctx, r.session, from, to)
}

// RecordControl appends a control event for the bound session.
func (r *Recorder) RecordControl(ctx context.Context, action string) error {
	return r.store.RecordControl(ctx, r.session, action)
}

// RecordDetail appends a detail for the bound session.
func (r *Recorder) RecordDetail(ctx context.Context, key, value string) error {
	return r.store.RecordDetail(ctx, r.session, key, value)
}
