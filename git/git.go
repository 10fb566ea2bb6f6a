package git

import (
	"context"
)

// Client runs git commands in a working directory with an extra environment,
// typically the variables exported by a credential binding.
type Client struct {
	workDir string // Working directory for commands
	env     []string
	runner  Runner
}

// Option configures Client.
type Option func(*Client)

// NewClient creates a git client operating in workDir. workDir may be empty
// for commands that do not depend on it, such as Version or Clone.
func NewClient(workDir string, opts ...Option) *Client {
	c := &Client{
		workDir: workDir,
		runner:  NewExecRunner(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithEnv appends NAME=value pairs to the environment of every command the
// client runs. Pass Bound.Env.Strings() to authenticate with a binding.
func WithEnv(env []string) Option {
	return func(c *Client) {
		c.env = append([]string(nil), env...)
	}
}

// WithRunner sets a custom command runner for git operations.
// Primarily used for testing with mock runners.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// Env returns a copy of the extra environment the client passes to git.
func (c *Client) Env() []string {
	return append([]string(nil), c.env...)
}

// Version returns the git version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "version")
	if err != nil {
		return "", &Error{Op: "version", Err: err}
	}
	return out, nil
}

// LsRemote lists references on a remote repository, optionally limited to
// the given ref patterns. It is the cheapest operation that exercises
// authentication end to end.
func (c *Client) LsRemote(ctx context.Context, remote string, refs ...string) (string, error) {
	args := append([]string{"ls-remote", remote}, refs...)
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", &Error{Op: "ls-remote", Err: err}
	}
	return out, nil
}

// Clone clones url into dir.
func (c *Client) Clone(ctx context.Context, url, dir string) error {
	if _, err := c.run(ctx, "clone", "--", url, dir); err != nil {
		return &Error{Op: "clone", Err: err}
	}
	return nil
}

// Fetch updates refs from the named remote.
func (c *Client) Fetch(ctx context.Context, remote string) error {
	if _, err := c.run(ctx, "fetch", remote); err != nil {
		return &Error{Op: "fetch", Err: err}
	}
	return nil
}

// Push pushes refspec to the named remote.
func (c *Client) Push(ctx context.Context, remote, refspec string) error {
	if _, err := c.run(ctx, "push", remote, refspec); err != nil {
		return &Error{Op: "push", Err: err}
	}
	return nil
}

// RemoteURL returns the URL of the named remote.
func (c *Client) RemoteURL(ctx context.Context, remote string) (string, error) {
	url, err := c.run(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", &Error{Op: "get remote URL", Err: err}
	}
	return url, nil
}

// run executes a git command through the configured runner.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	return c.runner.Run(ctx, c.workDir, c.env, "git", args...)
}
