package ssh

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrExecutableNotFound is returned when every location the Locator knows
// about has been probed without finding an ssh client.
var ErrExecutableNotFound = errors.New("ssh executable not found")

// Environment variables the locator consults.
const (
	envProgramFiles    = "ProgramFiles"
	envProgramFilesX86 = "ProgramFiles(x86)"
	envPath            = "PATH"
)

// installSuffixes are the ssh locations used by Git for Windows
// installers, probed under each program-files root.
var installSuffixes = []string{
	filepath.Join("Git", "bin", "ssh.exe"),
	filepath.Join("Git", "usr", "bin", "ssh.exe"),
}

// layoutSwaps are directory-layout variations between Git for Windows
// releases, applied to a git path found on the search path to guess where
// its ssh client lives. Both separator spellings are handled because the
// configured tool path may use either.
var layoutSwaps = [][2]string{
	{"/bin/", "/usr/bin/"},
	{"/cmd/", "/bin/"},
	{"/cmd/", "/usr/bin/"},
	{"/mingw64/", "/"},
	{"/mingw64/bin/", "/usr/bin/"},
}

// Locator finds an ssh client on hosts where none is on the search path.
//
// The zero value reads the process environment and has no git hint; both
// fields may be set to tighten or redirect the search.
type Locator struct {
	// GitTool is the configured git client, either a bare name or a path.
	// It seeds the sibling and search-path probes. May be empty.
	GitTool string

	// Getenv reads environment variables. Nil means os.Getenv.
	Getenv func(string) string
}

func (l Locator) getenv(key string) string {
	if l.Getenv != nil {
		return l.Getenv(key)
	}
	return os.Getenv(key)
}

// Find returns the absolute path of an ssh executable.
//
// The search order is fixed: an explicit GIT_SSH override (honored only
// when it names an existing file), the Git for Windows install layouts
// under both program-files roots, an ssh.exe next to the configured git
// client, and finally layout variations around a git client found on the
// search path. When every probe misses, Find returns
// ErrExecutableNotFound.
func (l Locator) Find() (string, error) {
	if path := l.getenv(EnvGitSSH); path != "" && exists(path) {
		return absPath(path), nil
	}

	for _, root := range []string{envProgramFiles, envProgramFilesX86} {
		dir := l.getenv(root)
		if dir == "" {
			continue
		}
		for _, suffix := range installSuffixes {
			if path := filepath.Join(dir, suffix); exists(path) {
				return absPath(path), nil
			}
		}
	}

	if path := siblingSSH(l.GitTool); path != "" {
		return absPath(path), nil
	}

	if gitPath := l.findGitOnPath(); gitPath != "" {
		for _, candidate := range layoutVariants(gitPath) {
			if path := siblingSSH(candidate); path != "" {
				return absPath(path), nil
			}
		}
	}

	return "", fmt.Errorf("locate ssh for git tool %q: %w", l.GitTool, ErrExecutableNotFound)
}

// findGitOnPath resolves the configured git tool against PATH, trying the
// .exe and .cmd spellings in each directory. The tool name is lower-cased
// once so the suffix checks are stable on case-insensitive filesystems.
func (l Locator) findGitOnPath() string {
	tool := strings.ToLower(l.GitTool)
	if tool == "" {
		return ""
	}

	var exe, cmd string
	switch {
	case strings.HasSuffix(tool, ".exe"):
		exe = tool
		cmd = strings.TrimSuffix(tool, ".exe") + ".cmd"
	case strings.HasSuffix(tool, ".cmd"):
		cmd = tool
		exe = strings.TrimSuffix(tool, ".cmd") + ".exe"
	default:
		exe = tool + ".exe"
		cmd = tool + ".cmd"
	}

	for _, dir := range filepath.SplitList(l.getenv(envPath)) {
		if dir == "" {
			continue
		}
		if path := filepath.Join(dir, exe); exists(path) {
			return path
		}
		if path := filepath.Join(dir, cmd); exists(path) {
			return path
		}
	}

	// The configured value may already be a usable path.
	if exists(tool) {
		return absPath(tool)
	}
	return ""
}

// layoutVariants applies each layout swap to gitPath. Swaps that do not
// apply leave the path unchanged, so the original location is probed too.
func layoutVariants(gitPath string) []string {
	variants := make([]string, 0, len(layoutSwaps))
	for _, swap := range layoutSwaps {
		v := strings.ReplaceAll(gitPath, swap[0], swap[1])
		v = strings.ReplaceAll(v, toBackslash(swap[0]), toBackslash(swap[1]))
		variants = append(variants, v)
	}
	return variants
}

// siblingSSH probes for an ssh executable in the directory holding path.
func siblingSSH(path string) string {
	if path == "" {
		return ""
	}
	if !strings.ContainsAny(path, `/\`) {
		// A bare tool name has no parent directory to probe.
		return ""
	}
	candidate := filepath.Join(filepath.Dir(path), "ssh.exe")
	if exists(candidate) {
		return candidate
	}
	return ""
}

func toBackslash(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
