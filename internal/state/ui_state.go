// Package state persists small UI preferences between wizard runs.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/investflow/internal/logger"
)

const fileName = "ui-state.json"

// UIState holds persistent UI preferences that carry across sessions.
type UIState struct {
	Motion      MotionState `json:"motion"`
	LastSession string      `json:"last_session,omitempty"`
	LastStep    string      `json:"last_step,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at,omitempty"`
}

// MotionState holds the animation preference.
type MotionState struct {
	Reduced bool `json:"reduced"`
}

// DefaultUIState returns the default UI state.
func DefaultUIState() *UIState {
	return &UIState{}
}

// Remember records the session and step the wizard was last on.
func (s *UIState) Remember(session, step string) {
	s.LastSession = session
	s.LastStep = step
	s.UpdatedAt = time.Now()
}

// Load reads the UI state from <dataDir>/ui-state.json.
// Returns default state if the file doesn't exist or on error.
func Load(dataDir string) *UIState {
	path := filepath.Join(dataDir, fileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultUIState()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read UI state file: %v", err)
		return DefaultUIState()
	}

	var state UIState
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("Failed to parse UI state JSON: %v", err)
		return DefaultUIState()
	}

	return &state
}

// Save writes the UI state to <dataDir>/ui-state.json, creating dataDir if
// needed.
func Save(dataDir string, state *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, fileName)

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}
