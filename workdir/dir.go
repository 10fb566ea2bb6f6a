package workdir

import (
	"fmt"
	"os"
	"path/filepath"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Directory name pieces. The alphabet is alphanumeric only so generated
// names stay safe inside quoted script text on every platform.
const (
	dirPrefix   = ".credbind-"
	dirAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	dirIDLength = 10
)

// Dir is a transient directory holding the artifacts of one binding.
type Dir struct {
	path string
}

// Create makes a uniquely named transient directory inside the workspace,
// creating the workspace itself when missing. The directory is owner-only
// so secret material never becomes readable to other users.
func Create(workspace string) (*Dir, error) {
	abs, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	// Fresh random name per attempt; retry covers the unlikely collision
	// with a concurrent binding in the same workspace.
	for attempt := 0; attempt < 3; attempt++ {
		id, err := nanoid.Generate(dirAlphabet, dirIDLength)
		if err != nil {
			return nil, fmt.Errorf("generate directory name: %w", err)
		}
		path := filepath.Join(abs, dirPrefix+id)
		if err := os.Mkdir(path, 0o700); err != nil {
			if os.IsExist(err) {
				continue
			}
			return nil, fmt.Errorf("create transient directory: %w", err)
		}
		return &Dir{path: path}, nil
	}
	return nil, fmt.Errorf("create transient directory in %s: retries exhausted", abs)
}

// Path returns the absolute path of the transient directory.
func (d *Dir) Path() string {
	return d.path
}

// File returns the absolute path a file with the given name would have
// inside the transient directory.
func (d *Dir) File(name string) string {
	return filepath.Join(d.path, name)
}

// WriteSecret writes data to a file readable and writable by the owner
// only, replacing any previous content, and returns its absolute path.
func (d *Dir) WriteSecret(name string, data []byte) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	path := d.File(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// WriteScript writes text to a file, marks it executable for the owner,
// and returns its absolute path.
func (d *Dir) WriteScript(name, text string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	path := d.File(name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", err
	}
	if err := os.Chmod(path, 0o700); err != nil {
		return "", err
	}
	return path, nil
}

// checkName rejects names that would place an artifact outside the
// transient directory. Artifact names are bare file names, never paths.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	return nil
}

// Remove deletes the transient directory and everything beneath it.
// Removing an already-removed directory is a no-op, so Remove is safe to
// call more than once.
func (d *Dir) Remove() error {
	return os.RemoveAll(d.path)
}
