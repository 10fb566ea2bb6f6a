package testutil

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"strings"
	"testing"

	gossh "golang.org/x/crypto/ssh"
)

// GenerateSSHKey returns a freshly generated ed25519 private key in
// OpenSSH PEM format, without a trailing newline.
func GenerateSSHKey(t *testing.T) string {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	block, err := gossh.MarshalPrivateKey(priv, "test key")
	if err != nil {
		t.Fatalf("marshal private key: %v", err)
	}
	return strings.TrimSuffix(string(pem.EncodeToMemory(block)), "\n")
}

// GenerateEncryptedSSHKey returns a freshly generated ed25519 private key
// in OpenSSH PEM format, encrypted with passphrase, without a trailing
// newline.
func GenerateEncryptedSSHKey(t *testing.T, passphrase string) string {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	block, err := gossh.MarshalPrivateKeyWithPassphrase(priv, "test key", []byte(passphrase))
	if err != nil {
		t.Fatalf("marshal encrypted private key: %v", err)
	}
	return strings.TrimSuffix(string(pem.EncodeToMemory(block)), "\n")
}
