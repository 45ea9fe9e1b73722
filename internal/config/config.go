// Package config loads the user's config.yml and resolves scopes from it.
//
// The config directory is taken from the TEMBO_CONFIG environment variable,
// defaulting to ~/tembo/.config. The file is a `tembo:` mapping with
// base_path, template_path, a scopes list, and logging settings. A missing
// file is not a load error: defaults apply and the failure only surfaces when
// a scope is looked up, so the caller can distinguish "no config.yml" from
// "config.yml is empty" from "scope not in config.yml".
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tembo-pages/tembo/internal/errors"
	"github.com/tembo-pages/tembo/internal/models"
	"github.com/tembo-pages/tembo/internal/pathutil"
)

const (
	configFilename      = "config.yml"
	defaultConfigDir    = "~/tembo/.config"
	defaultBasePath     = "~/tembo"
	defaultTemplatePath = "~/tembo/.templates"
)

var mandatoryScopeKeys = []string{"name", "path", "filename", "extension"}

// Config is the resolved tembo configuration.
type Config struct {
	BasePath     string
	TemplatePath string
	LogLevel     string

	// configDir is where config.yml was looked for; kept for error messages.
	configDir string

	// scopes holds the raw scope mappings. Entries are validated lazily, when
	// a scope is selected, so `tembo list` works on a partially valid file.
	scopes []map[string]any
}

type fileConfig struct {
	Tembo struct {
		BasePath     string           `yaml:"base_path"`
		TemplatePath string           `yaml:"template_path"`
		Scopes       []map[string]any `yaml:"scopes"`
		Logging      struct {
			Level string `yaml:"level"`
			Path  string `yaml:"path"`
		} `yaml:"logging"`
	} `yaml:"tembo"`
}

// Load reads the configuration from the directory named by TEMBO_CONFIG,
// falling back to ~/tembo/.config.
func Load() (*Config, error) {
	dir := os.Getenv("TEMBO_CONFIG")
	if dir == "" {
		dir = defaultConfigDir
	}
	return LoadDir(dir)
}

// LoadDir reads config.yml from the given directory. A missing file yields a
// config with defaults; a file that cannot be parsed is an error.
func LoadDir(dir string) (*Config, error) {
	cfg := &Config{
		BasePath:     defaultBasePath,
		TemplatePath: defaultTemplatePath,
		configDir:    dir,
	}

	data, err := os.ReadFile(filepath.Join(pathutil.ExpandUser(dir), configFilename))
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(err, errors.CodeConfigInvalid,
				fmt.Sprintf("Config.yml found in %s could not be parsed", dir))
		}
		if fc.Tembo.BasePath != "" {
			cfg.BasePath = fc.Tembo.BasePath
		}
		if fc.Tembo.TemplatePath != "" {
			cfg.TemplatePath = fc.Tembo.TemplatePath
		}
		cfg.LogLevel = fc.Tembo.Logging.Level
		cfg.scopes = fc.Tembo.Scopes
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.CodeConfigInvalid,
			fmt.Sprintf("Config.yml found in %s could not be read", dir))
	}

	// Environment variables win over file values.
	if v := os.Getenv("TEMBO_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv("TEMBO_TEMPLATE_PATH"); v != "" {
		cfg.TemplatePath = v
	}

	return cfg, nil
}

// ConfigDir returns the directory config.yml was looked up in.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ScopeNames returns the scope names in config order. Entries without a name
// key are skipped.
func (c *Config) ScopeNames() []string {
	names := make([]string, 0, len(c.scopes))
	for _, raw := range c.scopes {
		if name, ok := stringValue(raw, "name"); ok {
			names = append(names, name)
		}
	}
	return names
}

// Scope resolves a scope by name. The three lookup failures are distinct so
// the caller can phrase three different messages: the scope is absent from a
// non-empty config, the config.yml exists but defines no scopes, or there is
// no config.yml at all. A found scope is validated for mandatory keys.
func (c *Config) Scope(name string) (models.Scope, error) {
	for _, raw := range c.scopes {
		if scopeName, ok := stringValue(raw, "name"); ok && scopeName == name {
			return scopeFromMap(raw)
		}
	}
	if len(c.scopes) > 0 {
		return models.Scope{}, errors.ScopeNotFound(name)
	}
	if pathutil.Exists(filepath.Join(pathutil.ExpandUser(c.configDir), configFilename)) {
		return models.Scope{}, errors.ConfigEmpty(c.configDir)
	}
	return models.Scope{}, errors.ConfigMissing(c.configDir)
}

func scopeFromMap(raw map[string]any) (models.Scope, error) {
	for _, key := range mandatoryScopeKeys {
		if _, ok := stringValue(raw, key); !ok {
			return models.Scope{}, errors.MandatoryKeyMissing(key)
		}
	}

	var scope models.Scope
	scope.Name, _ = stringValue(raw, "name")
	scope.Path, _ = stringValue(raw, "path")
	scope.Filename, _ = stringValue(raw, "filename")
	scope.Extension, _ = stringValue(raw, "extension")
	scope.Example, _ = stringValue(raw, "example")
	scope.TemplateFilename, _ = stringValue(raw, "template_filename")
	return scope, nil
}

// stringValue reads a scope key as a string, stringifying scalar values the
// way the YAML parser may have typed them (extensions like `md` stay strings,
// but a bare numeric filename decodes as an int).
func stringValue(raw map[string]any, key string) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprintf("%v", v), true
}
