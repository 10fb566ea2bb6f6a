// Package credential defines the credential model the bindings consume
// and the stores that resolve identifiers to credentials.
//
// Credentials are opaque to the bindings: a private key is carried as
// text and never parsed or validated, so any key format the ssh client
// understands passes through unchanged.
//
// Core types:
//   - Credential: interface implemented by one concrete type per Kind
//   - SSHKey, Text, UsernamePassword, File: the credential kinds
//   - Secret: a string that masks itself in logs and formatted output
//   - Store: identifier resolution, with in-memory and YAML-file backends
//
// Example usage:
//
//	store := credential.NewMemoryStore()
//	store.Put("deploy-key", &credential.SSHKey{
//		Username:    "git",
//		PrivateKeys: []string{keyPEM},
//	})
//	cred, err := store.Fetch(ctx, "deploy-key")
package credential
