package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUIState(t *testing.T) {
	state := DefaultUIState()

	if state == nil {
		t.Fatal("DefaultUIState returned nil")
	}
	if state.Motion.Reduced {
		t.Error("Expected full motion by default")
	}
	if state.LastSession != "" {
		t.Errorf("Expected no last session, got %q", state.LastSession)
	}
}

func TestLoadNonExistent(t *testing.T) {
	state := Load(filepath.Join(t.TempDir(), "missing"))

	if state == nil {
		t.Fatal("Load returned nil for non-existent file")
	}
	if state.Motion.Reduced {
		t.Error("Expected default motion preference")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")

	state := DefaultUIState()
	state.Motion.Reduced = true
	state.Remember("acme-fund", "llc-signing")

	if err := Save(tmpDir, state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, fileName)); err != nil {
		t.Fatalf("State file was not created: %v", err)
	}

	loaded := Load(tmpDir)
	if !loaded.Motion.Reduced {
		t.Error("Expected reduced motion to round-trip")
	}
	if loaded.LastSession != "acme-fund" || loaded.LastStep != "llc-signing" {
		t.Errorf("Unexpected last position: %q/%q", loaded.LastSession, loaded.LastStep)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set by Remember")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, fileName), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	state := Load(tmpDir)
	if state == nil || state.Motion.Reduced {
		t.Error("Expected defaults for a corrupt state file")
	}
}
