package credbind

import (
	"context"
	"fmt"

	"github.com/randalmurphal/credbind/credential"
	"github.com/randalmurphal/credbind/workdir"
)

// SecretFile materializes a file credential in a transient directory and
// binds its absolute path to one environment variable.
type SecretFile struct {
	// CredentialID names the file credential in the store.
	CredentialID string

	// Variable is exported with the absolute path of the written file.
	Variable string
}

// Kind implements Binding.
func (b *SecretFile) Kind() credential.Kind { return credential.KindFile }

// Variables implements Binding.
func (b *SecretFile) Variables() []string { return []string{b.Variable} }

// Validate reports configuration errors without fetching or writing
// anything.
func (b *SecretFile) Validate() error {
	if b.CredentialID == "" {
		return &ConfigError{Binding: "file", Reason: "missing credential id"}
	}
	if b.Variable == "" {
		return &ConfigError{Binding: "file", Reason: "missing variable"}
	}
	return nil
}

// Bind implements Binding.
func (b *SecretFile) Bind(ctx context.Context, bc BindContext) (*Bound, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cred, err := fetchCredential(ctx, bc, b.CredentialID)
	if err != nil {
		return nil, err
	}
	file, ok := cred.(*credential.File)
	if !ok {
		return nil, wrongKind(b.CredentialID, cred, credential.KindFile)
	}

	dir, err := workdir.Create(bc.Workspace)
	if err != nil {
		return nil, fmt.Errorf("create transient directory: %w", err)
	}

	name := file.Name
	if name == "" {
		name = "secret-" + b.Variable
	}
	path, err := dir.WriteSecret(name, file.Data)
	if err != nil {
		err = fmt.Errorf("write secret file: %w", err)
		if rmErr := dir.Remove(); rmErr != nil {
			err = fmt.Errorf("%w (cleanup: %v)", err, rmErr)
		}
		return nil, err
	}
	bc.logger().Debug("bound secret file", "credential", b.CredentialID, "path", path)

	env := newEnvironment()
	env.set(b.Variable, path)
	return &Bound{Env: env, unbind: dir.Remove}, nil
}
