// Package testfixtures provides fakes and helpers for wizard tests.
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/investflow/internal/flow"
)

// StepChange is one recorded step transition.
type StepChange struct {
	From, To flow.Step
}

// MockRecorder is an in-memory journal recorder. It is safe for use from
// command goroutines.
type MockRecorder struct {
	mu sync.Mutex

	Steps    []StepChange
	Controls []string
	Details  map[string]string

	// Err, when set, is returned from every call and nothing is recorded.
	Err error

	Calls int
}

// NewMockRecorder creates an empty MockRecorder.
func NewMockRecorder() *MockRecorder {
	return &MockRecorder{Details: map[string]string{}}
}

// RecordStep records a step change.
func (m *MockRecorder) RecordStep(_ context.Context, from, to flow.Step) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	m.Steps = append(m.Steps, StepChange{From: from, To: to})
	return nil
}

// RecordControl records a control action.
func (m *MockRecorder) RecordControl(_ context.Context, action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	m.Controls = append(m.Controls, action)
	return nil
}

// RecordDetail records a session detail.
func (m *MockRecorder) RecordDetail(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	m.Details[key] = value
	return nil
}

// Targets returns the destination of every recorded step change in order.
func (m *MockRecorder) Targets() []flow.Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]flow.Step, len(m.Steps))
	for i, s := range m.Steps {
		out[i] = s.To
	}
	return out
}

// ControlActions returns a copy of the recorded control actions.
func (m *MockRecorder) ControlActions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Controls...)
}
