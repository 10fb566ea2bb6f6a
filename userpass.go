package credbind

import (
	"context"
	"fmt"

	"github.com/randalmurphal/credbind/credential"
)

// UsernamePassword binds a username and password credential to two
// environment variables. Nothing is written to disk.
type UsernamePassword struct {
	// CredentialID names the username-password credential in the store.
	CredentialID string

	// UsernameVariable is exported with the username.
	UsernameVariable string

	// PasswordVariable is exported with the password plaintext.
	PasswordVariable string
}

// Kind implements Binding.
func (b *UsernamePassword) Kind() credential.Kind { return credential.KindUsernamePassword }

// Variables implements Binding.
func (b *UsernamePassword) Variables() []string {
	return []string{b.UsernameVariable, b.PasswordVariable}
}

// Validate reports configuration errors without fetching anything.
func (b *UsernamePassword) Validate() error {
	if b.CredentialID == "" {
		return &ConfigError{Binding: "username-password", Reason: "missing credential id"}
	}
	if b.UsernameVariable == "" {
		return &ConfigError{Binding: "username-password", Reason: "missing username variable"}
	}
	if b.PasswordVariable == "" {
		return &ConfigError{Binding: "username-password", Reason: "missing password variable"}
	}
	if b.UsernameVariable == b.PasswordVariable {
		return &ConfigError{Binding: "username-password", Reason: fmt.Sprintf("variable %q configured twice", b.UsernameVariable)}
	}
	return nil
}

// Bind implements Binding.
func (b *UsernamePassword) Bind(ctx context.Context, bc BindContext) (*Bound, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cred, err := fetchCredential(ctx, bc, b.CredentialID)
	if err != nil {
		return nil, err
	}
	up, ok := cred.(*credential.UsernamePassword)
	if !ok {
		return nil, wrongKind(b.CredentialID, cred, credential.KindUsernamePassword)
	}

	env := newEnvironment()
	env.set(b.UsernameVariable, up.Username)
	env.set(b.PasswordVariable, up.Password.Plaintext())
	return &Bound{Env: env}, nil
}
