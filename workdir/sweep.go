package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SweepResult summarizes one sweep over a workspace.
type SweepResult struct {
	Removed []string // Transient directories deleted (or that would be, when dry-run)
	Kept    []string // Transient directories younger than the age limit
	Errors  []string // Per-directory failures; the sweep continues past them
}

// Sweep removes leftover transient directories under workspace older than
// maxAge. A build whose process died before unbinding leaves its directory
// behind; sweeping at workspace setup reclaims those without touching the
// directories of builds still running. With dryRun set, nothing is deleted
// and Removed lists what a real sweep would take.
func Sweep(workspace string, maxAge time.Duration, dryRun bool) (*SweepResult, error) {
	result := &SweepResult{}

	entries, err := os.ReadDir(workspace)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("read workspace: %w", err)
	}

	threshold := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), dirPrefix) {
			continue
		}

		path := filepath.Join(workspace, entry.Name())

		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("stat %s: %v", entry.Name(), err))
			continue
		}
		if info.ModTime().After(threshold) {
			result.Kept = append(result.Kept, path)
			continue
		}

		if !dryRun {
			if err := os.RemoveAll(path); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("remove %s: %v", entry.Name(), err))
				continue
			}
		}
		result.Removed = append(result.Removed, path)
	}

	return result, nil
}
