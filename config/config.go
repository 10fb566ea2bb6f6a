package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	credbind "github.com/randalmurphal/credbind"
	"github.com/randalmurphal/credbind/credential"
)

// Config is a parsed binding manifest: the credential store to read and
// the bindings to establish before a command runs.
type Config struct {
	// Store is the path to the YAML credential store. ${VAR} references
	// are expanded from the environment; relative paths resolve against
	// the manifest's directory.
	Store string `yaml:"store"`

	// Bindings declares the credentials to bind and the variable names
	// they export.
	Bindings []BindingConfig `yaml:"bindings"`

	baseDir string
}

// BindingConfig declares one credential binding. Kind selects the binding
// type; which variable fields apply depends on the kind.
type BindingConfig struct {
	Kind       string `yaml:"kind"`
	Credential string `yaml:"credential"`

	// ssh-key bindings.
	KeyFileVariable    string `yaml:"key_file_variable"`
	PassphraseVariable string `yaml:"passphrase_variable"`

	// ssh-key and username-password bindings.
	UsernameVariable string `yaml:"username_variable"`

	// text and file bindings.
	Variable string `yaml:"variable"`

	// username-password bindings.
	PasswordVariable string `yaml:"password_variable"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	return Parse(data, filepath.Dir(abs))
}

// Parse parses manifest data. Relative store paths resolve against baseDir.
func Parse(data []byte, baseDir string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.Bindings) == 0 {
		return nil, fmt.Errorf("config declares no bindings")
	}

	cfg.baseDir = baseDir
	return &cfg, nil
}

// Build constructs the declared bindings. Every declaration is validated
// up front, including cross-binding variable collisions, so a bad manifest
// fails before any credential is fetched.
func (c *Config) Build() ([]credbind.Binding, error) {
	bindings := make([]credbind.Binding, 0, len(c.Bindings))
	for i, bc := range c.Bindings {
		b, err := bc.build()
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i+1, err)
		}
		bindings = append(bindings, b)
	}

	if err := credbind.CheckVariables(bindings...); err != nil {
		return nil, err
	}

	return bindings, nil
}

func (bc BindingConfig) build() (credbind.Binding, error) {
	var b interface {
		credbind.Binding
		Validate() error
	}

	switch bc.Kind {
	case string(credential.KindSSHKey):
		b = &credbind.GitSSHKey{
			CredentialID:       bc.Credential,
			KeyFileVariable:    bc.KeyFileVariable,
			UsernameVariable:   bc.UsernameVariable,
			PassphraseVariable: bc.PassphraseVariable,
		}
	case string(credential.KindText):
		b = &credbind.SecretText{
			CredentialID: bc.Credential,
			Variable:     bc.Variable,
		}
	case string(credential.KindUsernamePassword):
		b = &credbind.UsernamePassword{
			CredentialID:     bc.Credential,
			UsernameVariable: bc.UsernameVariable,
			PasswordVariable: bc.PasswordVariable,
		}
	case string(credential.KindFile):
		b = &credbind.SecretFile{
			CredentialID: bc.Credential,
			Variable:     bc.Variable,
		}
	default:
		return nil, &credbind.ConfigError{Binding: bc.Kind, Reason: "unknown kind"}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// OpenStore opens the credential store the manifest points at.
func (c *Config) OpenStore() (*credential.FileStore, error) {
	if c.Store == "" {
		return nil, fmt.Errorf("config declares no store")
	}

	path := os.ExpandEnv(c.Store)
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.baseDir, path)
	}

	return credential.LoadFile(path)
}
