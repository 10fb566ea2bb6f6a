package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileStore is a read-only credential store backed by a YAML document:
//
//	credentials:
//	  - id: deploy-key
//	    kind: ssh-key
//	    username: git
//	    passphrase: s3cret
//	    private_key_file: keys/deploy_ed25519
//	  - id: api-token
//	    kind: text
//	    text: hunter2
//	  - id: registry
//	    kind: username-password
//	    username: robot
//	    password: wall-e
//	  - id: kubeconfig
//	    kind: file
//	    name: config
//	    data_file: kubeconfig.yaml
//
// Relative private_key_file and data_file paths resolve against the
// document's directory. The store is immutable after loading and safe for
// concurrent use.
type FileStore struct {
	creds map[string]Credential
}

type fileDocument struct {
	Credentials []fileEntry `yaml:"credentials"`
}

type fileEntry struct {
	ID   string `yaml:"id"`
	Kind Kind   `yaml:"kind"`

	Username       string   `yaml:"username"`
	Password       Secret   `yaml:"password"`
	Text           Secret   `yaml:"text"`
	Passphrase     Secret   `yaml:"passphrase"`
	PrivateKeys    []string `yaml:"private_keys"`
	PrivateKeyFile string   `yaml:"private_key_file"`
	Name           string   `yaml:"name"`
	Data           string   `yaml:"data"`
	DataFile       string   `yaml:"data_file"`
}

// LoadFile reads and parses a credential document.
func LoadFile(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credential store: %w", err)
	}
	store, err := ParseFile(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("credential store %s: %w", path, err)
	}
	return store, nil
}

// ParseFile builds a FileStore from YAML. baseDir anchors relative file
// references.
func ParseFile(data []byte, baseDir string) (*FileStore, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	creds := make(map[string]Credential, len(doc.Credentials))
	for i, entry := range doc.Credentials {
		if entry.ID == "" {
			return nil, fmt.Errorf("credential %d: missing id", i)
		}
		if _, ok := creds[entry.ID]; ok {
			return nil, fmt.Errorf("credential %q: duplicate id", entry.ID)
		}
		c, err := entry.credential(baseDir)
		if err != nil {
			return nil, fmt.Errorf("credential %q: %w", entry.ID, err)
		}
		creds[entry.ID] = c
	}
	return &FileStore{creds: creds}, nil
}

// Fetch implements Store.
func (s *FileStore) Fetch(_ context.Context, id string) (Credential, error) {
	c, ok := s.creds[id]
	if !ok {
		return nil, fmt.Errorf("credential %q: %w", id, ErrNotFound)
	}
	return c, nil
}

// IDs returns the identifiers of every credential in the store, useful
// for diagnostics. Order is unspecified.
func (s *FileStore) IDs() []string {
	ids := make([]string, 0, len(s.creds))
	for id := range s.creds {
		ids = append(ids, id)
	}
	return ids
}

func (e fileEntry) credential(baseDir string) (Credential, error) {
	switch e.Kind {
	case KindSSHKey:
		keys := append([]string(nil), e.PrivateKeys...)
		if e.PrivateKeyFile != "" {
			data, err := os.ReadFile(resolve(baseDir, e.PrivateKeyFile))
			if err != nil {
				return nil, fmt.Errorf("read private key: %w", err)
			}
			keys = append(keys, strings.TrimRight(string(data), "\n"))
		}
		if len(keys) == 0 {
			return nil, errors.New("missing private key material")
		}
		return &SSHKey{Username: e.Username, PrivateKeys: keys, Passphrase: e.Passphrase}, nil

	case KindText:
		return &Text{Secret: e.Text}, nil

	case KindUsernamePassword:
		if e.Username == "" {
			return nil, errors.New("missing username")
		}
		return &UsernamePassword{Username: e.Username, Password: e.Password}, nil

	case KindFile:
		data := []byte(e.Data)
		if e.DataFile != "" {
			var err error
			data, err = os.ReadFile(resolve(baseDir, e.DataFile))
			if err != nil {
				return nil, fmt.Errorf("read data file: %w", err)
			}
		}
		name := e.Name
		if name == "" {
			name = e.ID
		}
		return &File{Name: name, Data: data}, nil

	case "":
		return nil, errors.New("missing kind")

	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
