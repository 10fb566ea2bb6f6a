// Package git runs git commands with a bound credential environment.
//
// The Client does not wrap the full git surface. It covers the remote
// operations a freshly bound credential is exercised with, and accepts the
// NAME=value pairs produced by a binding so authentication flows through
// GIT_SSH without the caller managing variables by hand.
//
// Core types:
//   - Client: git command execution in a working directory
//   - Runner: command execution interface (with a sequential mock for testing)
//   - CommandError: failed command with captured output and exit status
//
// Example usage:
//
//	client := git.NewClient(workDir, git.WithEnv(bound.Env.Strings()))
//	refs, err := client.LsRemote(ctx, "git@github.com:org/repo.git")
package git
