package credential

import (
	"context"
	"errors"
)

// Kind identifies a credential's shape. Each binding declares the kind it
// consumes and rejects credentials of any other kind.
type Kind string

// Credential kinds understood by the bindings.
const (
	KindSSHKey           Kind = "ssh-key"
	KindText             Kind = "text"
	KindUsernamePassword Kind = "username-password"
	KindFile             Kind = "file"
)

// Store errors.
var (
	// ErrNotFound indicates the credential identifier is unknown to the
	// store.
	ErrNotFound = errors.New("credential not found")

	// ErrWrongKind indicates the identifier resolved, but to a credential
	// of a different kind than the binding expects.
	ErrWrongKind = errors.New("credential has the wrong kind")
)

// Credential is a secret resolved from a Store. The concrete type behind
// the interface carries the material for exactly one kind.
type Credential interface {
	Kind() Kind
}

// Store resolves credential identifiers. Implementations must be safe for
// concurrent use; Fetch is read-only.
type Store interface {
	Fetch(ctx context.Context, id string) (Credential, error)
}

// SSHKey is a private-key credential for SSH authentication. The key
// material is opaque text, never parsed.
type SSHKey struct {
	// Username is the login user for ssh connections.
	Username string

	// PrivateKeys holds one or more private key blocks, each without a
	// trailing newline.
	PrivateKeys []string

	// Passphrase protects the private keys. Empty means unprotected.
	Passphrase Secret
}

// Kind implements Credential.
func (*SSHKey) Kind() Kind { return KindSSHKey }

// Text is a single opaque secret string.
type Text struct {
	Secret Secret
}

// Kind implements Credential.
func (*Text) Kind() Kind { return KindText }

// UsernamePassword is a username and password pair.
type UsernamePassword struct {
	Username string
	Password Secret
}

// Kind implements Credential.
func (*UsernamePassword) Kind() Kind { return KindUsernamePassword }

// File is a secret delivered to builds as a file.
type File struct {
	// Name is the preferred on-disk filename. Optional.
	Name string

	// Data is the file content.
	Data []byte
}

// Kind implements Credential.
func (*File) Kind() Kind { return KindFile }
