package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// writeManifest writes a credential store and binding manifest into a
// temporary directory and returns the manifest path.
func writeManifest(t *testing.T, storeDoc, manifestDoc string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte(storeDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "credbind.yaml")
	if err := os.WriteFile(path, []byte(manifestDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// executeCommand runs a fresh root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

const testStoreDoc = `
credentials:
  - id: api-token
    kind: text
    text: hunter2
  - id: deploy-key
    kind: ssh-key
    username: git
    private_keys:
      - |-
        FAKE KEY LINE 1
        FAKE KEY LINE 2
`

func TestVarsCommand(t *testing.T) {
	path := writeManifest(t, testStoreDoc, `
store: credentials.yaml
bindings:
  - kind: text
    credential: api-token
    variable: API_TOKEN
  - kind: ssh-key
    credential: deploy-key
    key_file_variable: DEPLOY_KEY
`)

	out, err := executeCommand(t, "vars", "--config", path)
	if err != nil {
		t.Fatalf("vars failed: %v", err)
	}
	if !strings.Contains(out, "api-token (text): API_TOKEN") {
		t.Errorf("output missing text binding: %q", out)
	}
	if !strings.Contains(out, "deploy-key (ssh-key): DEPLOY_KEY") {
		t.Errorf("output missing ssh binding: %q", out)
	}
}

func TestVarsCommand_Collision(t *testing.T) {
	path := writeManifest(t, testStoreDoc, `
store: credentials.yaml
bindings:
  - kind: text
    credential: api-token
    variable: TOKEN
  - kind: text
    credential: api-token
    variable: TOKEN
`)

	if _, err := executeCommand(t, "vars", "--config", path); err == nil {
		t.Fatal("expected collision error")
	}
}

func TestRunCommand_BindsEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}

	path := writeManifest(t, testStoreDoc, `
store: credentials.yaml
bindings:
  - kind: text
    credential: api-token
    variable: API_TOKEN
`)

	outFile := filepath.Join(t.TempDir(), "out")
	_, err := executeCommand(t, "run", "--config", path, "--",
		"/bin/sh", "-c", `printf '%s' "$API_TOKEN" > `+outFile)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hunter2" {
		t.Errorf("child saw API_TOKEN = %q, want %q", data, "hunter2")
	}
}

func TestRunCommand_SSHKeyLifecycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}

	path := writeManifest(t, testStoreDoc, `
store: credentials.yaml
bindings:
  - kind: ssh-key
    credential: deploy-key
    key_file_variable: DEPLOY_KEY
`)

	stateDir := t.TempDir()
	keyCopy := filepath.Join(stateDir, "key")
	pathsFile := filepath.Join(stateDir, "paths")
	workspace := t.TempDir()

	script := `cp "$DEPLOY_KEY" ` + keyCopy + ` && printf '%s\n%s\n' "$DEPLOY_KEY" "$GIT_SSH" > ` + pathsFile
	_, err := executeCommand(t, "run", "--config", path, "--workspace", workspace, "--",
		"/bin/sh", "-c", script)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(keyCopy)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "FAKE KEY LINE 1\nFAKE KEY LINE 2\n" {
		t.Errorf("key file content = %q", data)
	}

	// Every transient path the child saw must be gone once run returns.
	paths, err := os.ReadFile(pathsFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range strings.Fields(string(paths)) {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("transient artifact %s still exists after run", p)
		}
	}
}

func TestRunCommand_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}

	path := writeManifest(t, testStoreDoc, `
store: credentials.yaml
bindings:
  - kind: text
    credential: api-token
    variable: API_TOKEN
`)

	_, err := executeCommand(t, "run", "--config", path, "--", "/bin/sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error for failing child")
	}

	var exitErr *exitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *exitCodeError", err)
	}
	if exitErr.code != 3 {
		t.Errorf("code = %d, want 3", exitErr.code)
	}
}

func TestSweepCommand(t *testing.T) {
	workspace := t.TempDir()

	stale := filepath.Join(workspace, ".credbind-stale00000")
	if err := os.Mkdir(stale, 0o700); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "sweep", "--workspace", workspace, "--max-age", "24h")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if !strings.Contains(out, "1 removed") {
		t.Errorf("output = %q, want removal summary", out)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale directory still present after sweep")
	}
}

func TestRunCommand_BadManifest(t *testing.T) {
	_, err := executeCommand(t, "run", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--", "true")
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
