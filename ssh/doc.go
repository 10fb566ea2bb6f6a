// Package ssh synthesizes the helper scripts and resolves the ssh client
// a git process needs to authenticate with a bound private key.
//
// Script synthesis is pure text: WrapperScript and AskpassScript return
// platform-appropriate script bodies (POSIX sh or Windows batch) with
// every interpolated path and username quoted for the target interpreter,
// so hostile filenames or usernames cannot break out of the script.
//
// The Locator handles hosts whose ssh client is not on the search path,
// walking the installation layouts Git for Windows has shipped over the
// years.
//
// Core types:
//   - Platform: selects the script family (PlatformPosix, PlatformWindows)
//   - Locator: resolves an ssh executable from environment and git layout
//
// Example usage:
//
//	wrapper := ssh.WrapperScript(ssh.PlatformPosix, "", keyPath, "git")
//	askpass := ssh.AskpassScript(ssh.PlatformPosix, passphrasePath)
package ssh
