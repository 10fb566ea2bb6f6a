package ssh

import "strings"

// PosixQuote returns s single-quoted for inclusion in POSIX shell text.
// Embedded single quotes are rendered as '\'' so the value always reaches
// the command as exactly one argument.
func PosixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// BatchQuote returns s double-quoted for inclusion in a batch script.
// Embedded quotes are doubled and percent signs escaped so cmd.exe
// neither splits the value nor expands variables inside it.
func BatchQuote(s string) string {
	s = strings.ReplaceAll(s, `"`, `""`)
	s = strings.ReplaceAll(s, "%", "%%")
	return `"` + s + `"`
}
