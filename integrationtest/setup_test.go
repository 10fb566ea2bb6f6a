// Package integrationtest exercises the full binding flow across packages:
// manifest parsing, store loading, binding, child process consumption, and
// cleanup.
package integrationtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/randalmurphal/credbind/testutil"
)

// setupManifest writes a credential store holding a freshly generated ssh
// key and a text credential, plus a manifest binding both. It returns the
// manifest path and the key text.
func setupManifest(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	key := testutil.GenerateSSHKey(t)

	if err := os.WriteFile(filepath.Join(dir, "deploy_ed25519"), []byte(key+"\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	storeDoc := `
credentials:
  - id: deploy-key
    kind: ssh-key
    username: git
    private_key_file: deploy_ed25519
  - id: api-token
    kind: text
    text: hunter2
`
	if err := os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte(storeDoc), 0o600); err != nil {
		t.Fatalf("write store: %v", err)
	}

	manifestDoc := `
store: credentials.yaml
bindings:
  - kind: ssh-key
    credential: deploy-key
    key_file_variable: DEPLOY_KEY
  - kind: text
    credential: api-token
    variable: API_TOKEN
`
	path := filepath.Join(dir, "credbind.yaml")
	if err := os.WriteFile(path, []byte(manifestDoc), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	return path, key
}

// recordingSSHStub writes an executable ssh stand-in into its own directory
// that appends each argument it receives, one per line, to recordPath. The
// directory is meant to be prepended to PATH.
func recordingSSHStub(t *testing.T, recordPath string) string {
	t.Helper()

	dir := t.TempDir()
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" >> " + recordPath + "\nexit 0\n"
	if err := os.WriteFile(filepath.Join(dir, "ssh"), []byte(script), 0o755); err != nil {
		t.Fatalf("write ssh stub: %v", err)
	}

	return dir
}

// transientDirs lists the transient binding directories present in
// workspace.
func transientDirs(t *testing.T, workspace string) []string {
	t.Helper()

	entries, err := os.ReadDir(workspace)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read workspace: %v", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), ".credbind-") {
			dirs = append(dirs, filepath.Join(workspace, entry.Name()))
		}
	}
	return dirs
}
