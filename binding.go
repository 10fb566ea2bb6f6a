package credbind

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/credbind/credential"
	"github.com/randalmurphal/credbind/ssh"
)

// Binding exposes one credential to a build step through environment
// variables. A concrete type exists per credential kind.
//
// Variables must be computable from configuration alone, with no I/O and
// no credential fetch: callers use it to detect variable collisions
// across bindings before any of them run.
type Binding interface {
	// Kind returns the credential kind the binding consumes.
	Kind() credential.Kind

	// Variables returns every configured environment variable name the
	// binding will export.
	Variables() []string

	// Bind fetches the credential, materializes any transient artifacts
	// beneath the build workspace, and returns the environment the build
	// step must run with. The caller must release the returned handle on
	// every exit path.
	Bind(ctx context.Context, bc BindContext) (*Bound, error)
}

// BindContext carries the per-build collaborators a binding needs.
type BindContext struct {
	// Workspace is the build workspace root. Transient artifacts live in
	// a fresh directory beneath it.
	Workspace string

	// Store resolves credential identifiers.
	Store credential.Store

	// Platform selects the script family to synthesize. Empty means the
	// platform of the running process.
	Platform ssh.Platform

	// GitTool is the configured git client name or path, used as a hint
	// when resolving ssh.exe on Windows. May be empty.
	GitTool string

	// Logger receives debug-level progress. Nil means slog.Default().
	Logger *slog.Logger
}

func (bc BindContext) platform() ssh.Platform {
	if bc.Platform == "" {
		return ssh.Host()
	}
	return bc.Platform
}

func (bc BindContext) logger() *slog.Logger {
	if bc.Logger == nil {
		return slog.Default()
	}
	return bc.Logger
}

// Bound pairs a bound environment with the handle that releases its
// transient artifacts.
type Bound struct {
	// Env is the environment the build step must run with.
	Env *Environment

	unbind func() error
}

// Unbind deletes every transient artifact the binding created. It is
// safe to call more than once; artifacts already gone are not an error.
// Bindings that created no artifacts return nil immediately.
func (b *Bound) Unbind() error {
	if b == nil || b.unbind == nil {
		return nil
	}
	return b.unbind()
}

// CheckVariables verifies that no two bindings export the same configured
// variable name. It runs on configuration alone, before any binding
// executes.
func CheckVariables(bindings ...Binding) error {
	seen := make(map[string]credential.Kind)
	for _, b := range bindings {
		for _, name := range b.Variables() {
			if other, ok := seen[name]; ok {
				return &ConfigError{
					Binding: string(b.Kind()),
					Reason:  fmt.Sprintf("variable %q already exported by a %s binding", name, other),
				}
			}
			seen[name] = b.Kind()
		}
	}
	return nil
}

// fetchCredential resolves id from the store. Kind checking is done by
// the caller, which knows the concrete type it needs.
func fetchCredential(ctx context.Context, bc BindContext, id string) (credential.Credential, error) {
	if bc.Store == nil {
		return nil, fmt.Errorf("fetch credential %q: no store configured", id)
	}
	cred, err := bc.Store.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch credential %q: %w", id, err)
	}
	return cred, nil
}

// wrongKind builds the error for an identifier that resolved to a
// credential of the wrong kind.
func wrongKind(id string, have credential.Credential, want credential.Kind) error {
	return fmt.Errorf("credential %q: %w (have %s, want %s)",
		id, credential.ErrWrongKind, have.Kind(), want)
}
