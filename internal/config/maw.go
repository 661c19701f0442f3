// Package config loads the optional maw.toml file that supplies install defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
)

// DefaultFileName is the config file looked up in the target directory.
const DefaultFileName = ".maw.toml"

// ErrConfigValidation wraps validation failures, as opposed to TOML syntax or
// filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

// Config is the parsed maw.toml. Unset keys stay nil so command-line flags can
// tell "not configured" apart from false.
type Config struct {
	Install InstallConfig `toml:"install"`
}

// InstallConfig holds defaults for `maw init`.
type InstallConfig struct {
	Force           *bool   `toml:"force"`
	AgentsGitignore *bool   `toml:"agents_gitignore"`
	AssetsDir       *string `toml:"assets_dir"`
}

// DefaultPath returns the config path for a target directory.
func DefaultPath(target string) string {
	return filepath.Join(target, DefaultFileName)
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigFailedReadFmt, path, err)
	}
	return Parse(data, path)
}

// LoadOptional is Load, except a missing file yields an empty config and
// found=false.
func LoadOptional(path string) (cfg *Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, false, nil
		}
		return nil, false, fmt.Errorf(messages.ConfigFailedReadFmt, path, err)
	}
	cfg, err = Parse(data, path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// Parse parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Validate checks field values.
func (c *Config) Validate(source string) error {
	if c.Install.AssetsDir != nil && strings.TrimSpace(*c.Install.AssetsDir) == "" {
		return fmt.Errorf(messages.ConfigAssetsDirEmptyFmt, source)
	}
	return nil
}

// ForceOr returns install.force, or fallback when unset.
func (c *Config) ForceOr(fallback bool) bool {
	if c == nil || c.Install.Force == nil {
		return fallback
	}
	return *c.Install.Force
}

// AgentsGitignoreOr returns install.agents_gitignore, or fallback when unset.
func (c *Config) AgentsGitignoreOr(fallback bool) bool {
	if c == nil || c.Install.AgentsGitignore == nil {
		return fallback
	}
	return *c.Install.AgentsGitignore
}

// AssetsDir returns install.assets_dir resolved against the config file's
// directory, or "" when unset.
func (c *Config) AssetsDir(configPath string) string {
	if c == nil || c.Install.AssetsDir == nil {
		return ""
	}
	dir := strings.TrimSpace(*c.Install.AssetsDir)
	if filepath.IsAbs(dir) || configPath == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(configPath), dir)
}
