package ssh

// Environment variables git and ssh consult. EnvGitSSH doubles as the
// locator override: when it names an existing executable, that client is
// used instead of searching.
const (
	EnvGitSSH        = "GIT_SSH"
	EnvGitSSHVariant = "GIT_SSH_VARIANT"
	EnvSSHAskpass    = "SSH_ASKPASS"
)

// Variant is the GIT_SSH_VARIANT value matching the synthesized wrappers,
// pinning git's command-line convention to OpenSSH regardless of the
// wrapper's filename.
const Variant = "ssh"

// WrapperName returns the wrapper script's filename, derived from the key
// file's name so concurrent bindings in one directory cannot clash.
func WrapperName(p Platform, keyFileName string) string {
	if p == PlatformWindows {
		return keyFileName + "-copy.bat"
	}
	return keyFileName + "-copy"
}

// AskpassName returns the askpass helper's filename.
func AskpassName(p Platform) string {
	if p == PlatformWindows {
		return "pass-copy.bat"
	}
	return "pass-copy"
}

// WrapperScript returns the text of a GIT_SSH wrapper that pins the
// identity file, login user, and host-key policy, forwarding every
// argument git passes it. sshExe is the resolved client path; it is only
// consulted on Windows, POSIX scripts invoke ssh from the search path.
func WrapperScript(p Platform, sshExe, keyPath, username string) string {
	if p == PlatformWindows {
		return "@echo off\r\n" +
			BatchQuote(sshExe) +
			" -i " + BatchQuote(keyPath) +
			" -l " + BatchQuote(username) +
			" -o StrictHostKeyChecking=no %*\r\n"
	}
	// ssh ignores SSH_ASKPASS unless DISPLAY is set, so point it at a
	// dummy display when the environment has none.
	return "#!/bin/sh\n" +
		"if [ -z \"${DISPLAY}\" ]; then\n" +
		"  DISPLAY=:123.456\n" +
		"  export DISPLAY\n" +
		"fi\n" +
		"ssh -i " + PosixQuote(keyPath) +
		" -l " + PosixQuote(username) +
		" -o StrictHostKeyChecking=no \"$@\"\n"
}

// AskpassScript returns the text of an SSH_ASKPASS helper that prints the
// passphrase file's content, letting ssh read the passphrase without a
// terminal prompt.
func AskpassScript(p Platform, passphrasePath string) string {
	if p == PlatformWindows {
		return "@echo off\r\n" +
			"type " + BatchQuote(passphrasePath) + "\r\n"
	}
	return "#!/bin/sh\n" +
		"cat " + PosixQuote(passphrasePath) + "\n"
}
