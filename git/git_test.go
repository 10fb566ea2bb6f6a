package git

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/randalmurphal/credbind/testutil"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("/work")

	if c.workDir != "/work" {
		t.Errorf("workDir = %q, want %q", c.workDir, "/work")
	}
	if _, ok := c.runner.(*ExecRunner); !ok {
		t.Errorf("runner type = %T, want *ExecRunner", c.runner)
	}
	if len(c.Env()) != 0 {
		t.Errorf("Env() = %v, want empty", c.Env())
	}
}

func TestClient_WithEnv_Copies(t *testing.T) {
	env := []string{"GIT_SSH=/tmp/wrapper"}
	c := NewClient("", WithEnv(env))

	env[0] = "GIT_SSH=/mutated"
	if got := c.Env(); got[0] != "GIT_SSH=/tmp/wrapper" {
		t.Errorf("Env()[0] = %q, caller mutation leaked into client", got[0])
	}
}

func TestClient_LsRemote(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("29bf8a44\tHEAD\n29bf8a44\trefs/heads/main", nil)

	c := NewClient("/work", WithRunner(runner), WithEnv([]string{"GIT_SSH=/tmp/wrapper"}))
	out, err := c.LsRemote(testutil.TestContext(t), "git@example.com:org/repo.git", "refs/heads/*")
	if err != nil {
		t.Fatalf("LsRemote failed: %v", err)
	}
	if !strings.Contains(out, "refs/heads/main") {
		t.Errorf("output = %q, want ref listing", out)
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(calls))
	}
	call := calls[0]
	if call.Name != "git" {
		t.Errorf("Name = %q, want %q", call.Name, "git")
	}
	wantArgs := []string{"ls-remote", "git@example.com:org/repo.git", "refs/heads/*"}
	if !reflect.DeepEqual(call.Args, wantArgs) {
		t.Errorf("Args = %v, want %v", call.Args, wantArgs)
	}
	if call.Dir != "/work" {
		t.Errorf("Dir = %q, want %q", call.Dir, "/work")
	}
	if !reflect.DeepEqual(call.Env, []string{"GIT_SSH=/tmp/wrapper"}) {
		t.Errorf("Env = %v, binding environment not passed through", call.Env)
	}
}

func TestClient_Clone(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("", nil)

	c := NewClient("", WithRunner(runner))
	if err := c.Clone(testutil.TestContext(t), "git@example.com:org/repo.git", "/tmp/clone"); err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	wantArgs := []string{"clone", "--", "git@example.com:org/repo.git", "/tmp/clone"}
	if got := runner.Calls()[0].Args; !reflect.DeepEqual(got, wantArgs) {
		t.Errorf("Args = %v, want %v", got, wantArgs)
	}
}

func TestClient_Fetch(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("", nil)

	c := NewClient("/work", WithRunner(runner))
	if err := c.Fetch(testutil.TestContext(t), "origin"); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if got := runner.Calls()[0].Args; !reflect.DeepEqual(got, []string{"fetch", "origin"}) {
		t.Errorf("Args = %v, want fetch origin", got)
	}
}

func TestClient_Push_Error(t *testing.T) {
	runner := NewSequentialMockRunner()
	pushErr := errors.New("exit status 128")
	runner.AddOutput("fatal: could not read from remote repository", pushErr)

	c := NewClient("/work", WithRunner(runner))
	err := c.Push(testutil.TestContext(t), "origin", "main")
	if err == nil {
		t.Fatal("expected push error")
	}

	var opErr *Error
	if !errors.As(err, &opErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if opErr.Op != "push" {
		t.Errorf("Op = %q, want %q", opErr.Op, "push")
	}
	if !errors.Is(err, pushErr) {
		t.Errorf("expected underlying runner error in chain, got %v", err)
	}
}

func TestClient_RemoteURL(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("git@github.com:org/repo.git", nil)

	c := NewClient("/work", WithRunner(runner))
	url, err := c.RemoteURL(testutil.TestContext(t), "origin")
	if err != nil {
		t.Fatalf("RemoteURL failed: %v", err)
	}
	if url != "git@github.com:org/repo.git" {
		t.Errorf("url = %q", url)
	}

	if got := runner.Calls()[0].Args; !reflect.DeepEqual(got, []string{"remote", "get-url", "origin"}) {
		t.Errorf("Args = %v, want remote get-url origin", got)
	}
}

func TestSequentialMockRunner_Exhausted(t *testing.T) {
	runner := NewSequentialMockRunner()

	_, err := runner.Run(testutil.TestContext(t), "", nil, "git", "version")
	if err == nil {
		t.Fatal("expected error when no outputs are queued")
	}
	if !strings.Contains(err.Error(), "unexpected command") {
		t.Errorf("error = %q, want unexpected command", err)
	}
}

func TestClient_LsRemote_LocalRepo(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	ctx := testutil.TestContext(t)

	out, err := NewClient(t.TempDir()).LsRemote(ctx, repo)
	if err != nil {
		t.Fatalf("LsRemote failed: %v", err)
	}
	if !strings.Contains(out, "HEAD") {
		t.Errorf("output = %q, want HEAD ref", out)
	}
}

func TestClient_Clone_LocalRepo(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	ctx := testutil.TestContext(t)

	dir := filepath.Join(t.TempDir(), "clone")
	if err := NewClient("").Clone(ctx, repo, dir); err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
		t.Errorf("cloned repository missing README.md: %v", err)
	}
}

func TestClient_RemoteURL_LocalRepo(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.AddRemote(t, repo, "origin", "git@example.com:org/repo.git")

	url, err := NewClient(repo).RemoteURL(testutil.TestContext(t), "origin")
	if err != nil {
		t.Fatalf("RemoteURL failed: %v", err)
	}
	if url != "git@example.com:org/repo.git" {
		t.Errorf("url = %q, want the configured remote", url)
	}
}

func TestClient_Version_LocalGit(t *testing.T) {
	testutil.RequireGit(t)
	ctx := testutil.TestContext(t)

	version, err := NewClient("").Version(ctx)
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if !strings.HasPrefix(version, "git version") {
		t.Errorf("version = %q", version)
	}
}
