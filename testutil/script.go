package testutil

import (
	"os/exec"
	"runtime"
	"testing"
)

// RunScript executes a synthesized script with the platform's shell and
// returns its stdout.
func RunScript(t *testing.T, path string, args ...string) string {
	t.Helper()

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", append([]string{"/c", path}, args...)...)
	} else {
		cmd = exec.Command("/bin/sh", append([]string{path}, args...)...)
	}

	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("run script %s: %v", path, err)
	}
	return string(out)
}
