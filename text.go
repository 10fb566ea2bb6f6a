package credbind

import (
	"context"

	"github.com/randalmurphal/credbind/credential"
)

// SecretText binds a single-string secret to one environment variable.
// Nothing is written to disk, so the returned handle has no cleanup work.
type SecretText struct {
	// CredentialID names the text credential in the store.
	CredentialID string

	// Variable is exported with the secret plaintext.
	Variable string
}

// Kind implements Binding.
func (b *SecretText) Kind() credential.Kind { return credential.KindText }

// Variables implements Binding.
func (b *SecretText) Variables() []string { return []string{b.Variable} }

// Validate reports configuration errors without fetching anything.
func (b *SecretText) Validate() error {
	if b.CredentialID == "" {
		return &ConfigError{Binding: "text", Reason: "missing credential id"}
	}
	if b.Variable == "" {
		return &ConfigError{Binding: "text", Reason: "missing variable"}
	}
	return nil
}

// Bind implements Binding.
func (b *SecretText) Bind(ctx context.Context, bc BindContext) (*Bound, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cred, err := fetchCredential(ctx, bc, b.CredentialID)
	if err != nil {
		return nil, err
	}
	text, ok := cred.(*credential.Text)
	if !ok {
		return nil, wrongKind(b.CredentialID, cred, credential.KindText)
	}

	env := newEnvironment()
	env.set(b.Variable, text.Secret.Plaintext())
	return &Bound{Env: env}, nil
}
