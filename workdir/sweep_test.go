package workdir

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSweep_RemovesOnlyStaleTransientDirs(t *testing.T) {
	workspace := t.TempDir()

	stale, err := Create(workspace)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	backdate(t, stale.Path(), 2*time.Hour)

	fresh, err := Create(workspace)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Unrelated content must survive regardless of age.
	foreign := filepath.Join(workspace, "build-output")
	if err := os.Mkdir(foreign, 0o755); err != nil {
		t.Fatal(err)
	}
	backdate(t, foreign, 2*time.Hour)

	result, err := Sweep(workspace, time.Hour, false)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(result.Removed) != 1 || result.Removed[0] != stale.Path() {
		t.Errorf("Removed = %v, want only %s", result.Removed, stale.Path())
	}
	if len(result.Kept) != 1 || result.Kept[0] != fresh.Path() {
		t.Errorf("Kept = %v, want only %s", result.Kept, fresh.Path())
	}

	if _, err := os.Stat(stale.Path()); !os.IsNotExist(err) {
		t.Error("stale transient directory still exists")
	}
	if _, err := os.Stat(fresh.Path()); err != nil {
		t.Errorf("fresh transient directory removed: %v", err)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("unrelated directory removed: %v", err)
	}
}

func TestSweep_DryRun(t *testing.T) {
	workspace := t.TempDir()

	stale, err := Create(workspace)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	backdate(t, stale.Path(), 2*time.Hour)

	result, err := Sweep(workspace, time.Hour, true)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(result.Removed) != 1 {
		t.Fatalf("Removed = %v, want the stale directory listed", result.Removed)
	}
	if _, err := os.Stat(stale.Path()); err != nil {
		t.Errorf("dry run deleted the directory: %v", err)
	}
}

func TestSweep_MissingWorkspace(t *testing.T) {
	result, err := Sweep(filepath.Join(t.TempDir(), "nope"), time.Hour, false)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(result.Removed) != 0 || len(result.Kept) != 0 || len(result.Errors) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func backdate(t *testing.T, path string, age time.Duration) {
	t.Helper()

	old := time.Now().Add(-age)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("backdate %s: %v", path, err)
	}
}
