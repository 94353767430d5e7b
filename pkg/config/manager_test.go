package config

import (
	"path/filepath"
	"testing"
)

// TestManagerSingleFile verifies file mode loads and indexes units.
func TestManagerSingleFile(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "anims.yaml", validConfigYAML)

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	if got := m.Global().Playback.TPS; got != 60 {
		t.Errorf("Global TPS: got %d, want 60", got)
	}

	ids := m.ListUnits()
	want := []string{"fade_in", "walk_cycle"}
	if len(ids) != len(want) {
		t.Fatalf("ListUnits: got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ListUnits[%d]: got %q, want %q", i, ids[i], want[i])
		}
	}

	unit, ok := m.Unit("walk_cycle")
	if !ok {
		t.Fatal("Unit(walk_cycle): not found")
	}
	if unit.FPS != 12 {
		t.Errorf("walk_cycle FPS: got %v, want 12", unit.FPS)
	}

	if _, ok := m.Unit("missing"); ok {
		t.Error("Unit(missing): got ok=true, want false")
	}
}

// TestManagerDirectory verifies directory mode merges units from all
// YAML files and keeps the first file's global settings.
func TestManagerDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "01_base.yaml", `global:
  playback:
    tps: 30
animations:
  - id: one
    kind: tween
    duration: 1
`)
	writeConfigFile(t, dir, "02_more.yml", `animations:
  - id: two
    kind: frames
    fps: 12
    frame_count: 6
`)
	writeConfigFile(t, dir, "notes.txt", "not a config")

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	if got := m.Global().Playback.TPS; got != 30 {
		t.Errorf("Global TPS: got %d, want 30", got)
	}
	if got := len(m.Units()); got != 2 {
		t.Errorf("unit count: got %d, want 2", got)
	}
	if _, ok := m.Unit("two"); !ok {
		t.Error("Unit(two): not found after directory merge")
	}
}

// TestManagerDirectoryDuplicateID verifies a duplicate id across files
// is an error naming the second file.
func TestManagerDirectoryDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "a.yaml", "animations:\n  - id: dup\n    kind: tween\n    duration: 1\n")
	writeConfigFile(t, dir, "b.yaml", "animations:\n  - id: dup\n    kind: tween\n    duration: 1\n")

	if _, err := NewManager(dir); err == nil {
		t.Error("NewManager with duplicate ids: got nil error")
	}
}

// TestManagerEmptyDirectory verifies an empty directory is rejected.
func TestManagerEmptyDirectory(t *testing.T) {
	if _, err := NewManager(t.TempDir()); err == nil {
		t.Error("NewManager on an empty directory: got nil error")
	}
}

// TestManagerMissingPath verifies a missing path is an error.
func TestManagerMissingPath(t *testing.T) {
	if _, err := NewManager(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("NewManager on a missing path: got nil error")
	}
}
