package credbind

import (
	"bytes"
	"context"
	"fmt"

	"github.com/randalmurphal/credbind/credential"
	"github.com/randalmurphal/credbind/ssh"
	"github.com/randalmurphal/credbind/workdir"
)

// keyFilePrefix namespaces the key file after the configured variable so
// multiple ssh bindings sharing a workspace produce distinct artifacts.
const keyFilePrefix = "ssh-key-"

// reservedVariables are exported by every ssh binding; configured names
// must not shadow them.
var reservedVariables = map[string]struct{}{
	ssh.EnvGitSSH:        {},
	ssh.EnvGitSSHVariant: {},
	ssh.EnvSSHAskpass:    {},
}

// GitSSHKey binds an ssh private-key credential so an invoked git client
// authenticates over ssh without the key or passphrase ever appearing on
// a command line.
//
// Bind writes the key to an owner-only file in a transient directory,
// then synthesizes two scripts beside it: a GIT_SSH wrapper pinning the
// identity file, login user, and host-key policy, and an SSH_ASKPASS
// helper that feeds ssh the passphrase without a terminal prompt.
type GitSSHKey struct {
	// CredentialID names the ssh-key credential in the store.
	CredentialID string

	// KeyFileVariable is exported with the absolute path of the written
	// key file. Required; it also names the key file itself.
	KeyFileVariable string

	// UsernameVariable, when set, is exported with the credential's
	// username.
	UsernameVariable string

	// PassphraseVariable, when set, is exported with the passphrase
	// plaintext, or the empty string for an unprotected key.
	PassphraseVariable string
}

// Kind implements Binding.
func (b *GitSSHKey) Kind() credential.Kind { return credential.KindSSHKey }

// Variables implements Binding. Only the configured variables appear
// here; the fixed GIT_SSH, GIT_SSH_VARIANT, and SSH_ASKPASS variables are
// set by every ssh binding and are not part of its configurable surface.
func (b *GitSSHKey) Variables() []string {
	vars := []string{b.KeyFileVariable}
	if b.UsernameVariable != "" {
		vars = append(vars, b.UsernameVariable)
	}
	if b.PassphraseVariable != "" {
		vars = append(vars, b.PassphraseVariable)
	}
	return vars
}

// Validate reports configuration errors without fetching or writing
// anything.
func (b *GitSSHKey) Validate() error {
	if b.CredentialID == "" {
		return &ConfigError{Binding: "ssh-key", Reason: "missing credential id"}
	}
	if b.KeyFileVariable == "" {
		return &ConfigError{Binding: "ssh-key", Reason: "missing key file variable"}
	}
	if dup := firstDuplicate(b.Variables()); dup != "" {
		return &ConfigError{Binding: "ssh-key", Reason: fmt.Sprintf("variable %q configured twice", dup)}
	}
	for _, name := range b.Variables() {
		if _, ok := reservedVariables[name]; ok {
			return &ConfigError{Binding: "ssh-key", Reason: fmt.Sprintf("variable %q shadows a fixed git/ssh variable", name)}
		}
	}
	return nil
}

// Bind implements Binding. Any failure after the transient directory
// exists removes it again; a partial environment is never returned.
func (b *GitSSHKey) Bind(ctx context.Context, bc BindContext) (*Bound, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	cred, err := fetchCredential(ctx, bc, b.CredentialID)
	if err != nil {
		return nil, err
	}
	key, ok := cred.(*credential.SSHKey)
	if !ok {
		return nil, wrongKind(b.CredentialID, cred, credential.KindSSHKey)
	}

	platform := bc.platform()
	log := bc.logger()

	dir, err := workdir.Create(bc.Workspace)
	if err != nil {
		return nil, fmt.Errorf("create transient directory: %w", err)
	}
	fail := func(err error) (*Bound, error) {
		if rmErr := dir.Remove(); rmErr != nil {
			err = fmt.Errorf("%w (cleanup: %v)", err, rmErr)
		}
		return nil, err
	}

	keyFileName := keyFilePrefix + b.KeyFileVariable
	keyPath, err := dir.WriteSecret(keyFileName, keyMaterial(key.PrivateKeys))
	if err != nil {
		return fail(fmt.Errorf("write key file: %w", err))
	}

	// The passphrase file always exists, so the askpass helper has
	// something to print even for unprotected keys.
	passPath, err := dir.WriteSecret(keyFileName+"_passphrase.txt", []byte(key.Passphrase.Plaintext()+"\n"))
	if err != nil {
		return fail(fmt.Errorf("write passphrase file: %w", err))
	}

	// Resolve the ssh client before any script exists, so a host without
	// one fails with nothing to clean up beyond the secret files.
	var sshExe string
	if platform == ssh.PlatformWindows {
		locator := ssh.Locator{GitTool: bc.GitTool}
		sshExe, err = locator.Find()
		if err != nil {
			return fail(err)
		}
		log.Debug("resolved ssh executable", "path", sshExe)
	}

	wrapperPath, err := dir.WriteScript(ssh.WrapperName(platform, keyFileName),
		ssh.WrapperScript(platform, sshExe, keyPath, key.Username))
	if err != nil {
		return fail(fmt.Errorf("write ssh wrapper: %w", err))
	}
	askpassPath, err := dir.WriteScript(ssh.AskpassName(platform),
		ssh.AskpassScript(platform, passPath))
	if err != nil {
		return fail(fmt.Errorf("write askpass helper: %w", err))
	}
	log.Debug("bound ssh key",
		"credential", b.CredentialID,
		"key_file", keyPath,
		"wrapper", wrapperPath)

	env := newEnvironment()
	env.set(b.KeyFileVariable, keyPath)
	env.set(ssh.EnvGitSSH, wrapperPath)
	env.set(ssh.EnvGitSSHVariant, ssh.Variant)
	if b.PassphraseVariable != "" {
		env.set(b.PassphraseVariable, key.Passphrase.Plaintext())
		// ssh only needs the helper when there is a passphrase to supply.
		if key.Passphrase != "" {
			env.set(ssh.EnvSSHAskpass, askpassPath)
		}
	}
	if b.UsernameVariable != "" {
		env.set(b.UsernameVariable, key.Username)
	}

	return &Bound{Env: env, unbind: dir.Remove}, nil
}

// keyMaterial renders the key blocks in order, each newline terminated.
func keyMaterial(blocks []string) []byte {
	var buf bytes.Buffer
	for _, block := range blocks {
		buf.WriteString(block)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
