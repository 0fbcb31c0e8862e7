// Package config reads and writes the user defaults file that prefills
// answers for new projects.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/forge/internal/fsutil"
	"github.com/conn-castle/forge/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps defaults-file validation
// failures (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("defaults validation failed")

// Author holds the default author identity.
type Author struct {
	Name  string `toml:"name,omitempty"`
	Email string `toml:"email,omitempty"`
	URL   string `toml:"url,omitempty"`
}

// Defaults holds default answers for the choice prompts.
type Defaults struct {
	Language       string `toml:"language,omitempty"`
	Bundler        string `toml:"bundler,omitempty"`
	PackageManager string `toml:"package-manager,omitempty"`
}

// Config is the on-disk shape of ~/.forge/config.toml.
type Config struct {
	Author   Author   `toml:"author,omitempty"`
	Defaults Defaults `toml:"defaults,omitempty"`
}

// Path returns the defaults file location under the user's home directory.
func Path() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".forge", "config.toml"), nil
}

// Load reads and strictly decodes the defaults file. A missing file is not
// an error and yields a zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes defaults TOML data from a source identifier used in errors.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with unknown-field rejection, which
// catches keys toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Encode renders a Config as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigFailedEncodeFmt, err)
	}
	return buf.Bytes(), nil
}

// Save writes the defaults file atomically, creating its directory when
// needed.
func Save(path string, cfg *Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.ConfigFailedCreateDirFmt, dir, err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigFailedWriteFmt, path, err)
	}
	return nil
}
