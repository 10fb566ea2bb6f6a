// Package credbind binds credentials into a build step's execution
// environment.
//
// A Binding exposes one credential through environment variables for the
// duration of a single build step. Bindings that need files, such as ssh
// private keys, materialize them in a transient directory beneath the
// build workspace and remove them when the step finishes. The ssh binding
// additionally synthesizes a GIT_SSH wrapper and SSH_ASKPASS helper so an
// unmodified git client authenticates with the bound key, passphrase
// included, without prompting.
//
// Core types:
//   - Binding: the contract a credential kind implements (Kind,
//     Variables, Bind)
//   - GitSSHKey: ssh private-key binding with wrapper script synthesis
//   - SecretText, UsernamePassword, SecretFile: simpler binding kinds
//   - Bound: the bound environment plus the handle releasing every
//     transient artifact
//   - BindContext: per-build collaborators (workspace, store, platform)
//
// Example usage:
//
//	binding := &credbind.GitSSHKey{
//		CredentialID:    "deploy-key",
//		KeyFileVariable: "DEPLOY_KEY",
//	}
//
//	bound, err := binding.Bind(ctx, credbind.BindContext{
//		Workspace: workspace,
//		Store:     store,
//	})
//	if err != nil {
//		return err
//	}
//	defer bound.Unbind()
//
//	cmd := exec.Command("git", "fetch", "origin")
//	cmd.Env = append(os.Environ(), bound.Env.Strings()...)
package credbind
