package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands for the git client. The env slice holds
// NAME=value pairs appended to the process environment; it is how a bound
// credential reaches git.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command in dir and returns its trimmed stdout. Failures
// return a CommandError carrying the command's output and exit code.
func (r *ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		return output, &CommandError{
			Command:  name,
			Args:     args,
			Output:   output,
			ExitCode: exitCode,
			Err:      err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CommandError represents a command that failed to run or exited non-zero.
type CommandError struct {
	Command  string   // Command that was run
	Args     []string // Arguments passed to the command
	Output   string   // Stderr, or stdout when stderr is empty
	ExitCode int      // Process exit code, -1 when the command did not start
	Err      error    // Underlying error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
