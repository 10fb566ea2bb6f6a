package ssh

import "runtime"

// Platform selects which script family a binding synthesizes. It is
// resolved once per bind operation and every platform branch keys on it,
// which keeps script synthesis testable from any host.
type Platform string

const (
	// PlatformPosix emits /bin/sh scripts and relies on ssh being on the
	// search path.
	PlatformPosix Platform = "posix"

	// PlatformWindows emits batch scripts and resolves ssh.exe explicitly
	// before any script is written.
	PlatformWindows Platform = "windows"
)

// Host returns the platform of the running process.
func Host() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformPosix
}
