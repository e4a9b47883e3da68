// Package config loads hadolint-get settings from a TOML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/IngoMeyer441/hadolint-get/internal/logging"
	"github.com/IngoMeyer441/hadolint-get/internal/messages"
)

// Environment variables read by Load.
const (
	EnvVersion     = "HADOLINT_GET_VERSION"
	EnvCacheDir    = "HADOLINT_GET_CACHE_DIR"
	EnvNoNetwork   = "HADOLINT_GET_NO_NETWORK"
	EnvReleaseURL  = "HADOLINT_GET_RELEASE_URL"
	EnvUpstreamURL = "HADOLINT_GET_UPSTREAM_URL"
	EnvLogLevel    = logging.LogLevelEnvVar
)

// ErrConfigValidation wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// Config holds the settings that influence version resolution and fetching.
// Empty fields mean "use the built-in default".
type Config struct {
	Version     string `toml:"version"`
	CacheDir    string `toml:"cache_dir"`
	Offline     bool   `toml:"offline"`
	ReleaseURL  string `toml:"release_url"`
	UpstreamURL string `toml:"upstream_url"`
	LogLevel    string `toml:"log_level"`

	// Source is the config file the values were read from, if any.
	Source string `toml:"-"`
}

// Load finds the config file above start, reads it, and applies environment overrides.
// A missing config file is not an error.
func Load(start string, getenv func(string) string) (*Config, error) {
	path, found, err := FindConfigFile(start)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if found {
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and validates the config file at path.
// A relative cache_dir is resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	if cfg.CacheDir != "" && !filepath.IsAbs(cfg.CacheDir) && !strings.HasPrefix(cfg.CacheDir, "~") {
		cfg.CacheDir = filepath.Join(filepath.Dir(path), cfg.CacheDir)
	}
	cfg.CacheDir, err = expandHome(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig parses and validates config TOML data.
// data is the TOML content; source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
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

// ApplyEnv overrides fields with the HADOLINT_GET_* environment variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvVersion)); v != "" {
		c.Version = v
	}
	if v := strings.TrimSpace(getenv(EnvCacheDir)); v != "" {
		expanded, err := expandHome(v)
		if err != nil {
			return err
		}
		c.CacheDir = expanded
	}
	if v := strings.TrimSpace(getenv(EnvNoNetwork)); v != "" {
		offline, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: "+messages.ConfigBoolInvalidFmt, ErrConfigValidation, EnvNoNetwork, v)
		}
		c.Offline = offline
	}
	if v := strings.TrimSpace(getenv(EnvReleaseURL)); v != "" {
		c.ReleaseURL = v
	}
	if v := strings.TrimSpace(getenv(EnvUpstreamURL)); v != "" {
		c.UpstreamURL = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if err := c.Validate("environment"); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return nil
}

// Validate checks URLs and the log level.
func (c *Config) Validate(source string) error {
	if err := validateURL(source, "release_url", c.ReleaseURL, "http", "https"); err != nil {
		return err
	}
	if err := validateURL(source, "upstream_url", c.UpstreamURL, "http", "https", "ssh", "git", "file"); err != nil {
		return err
	}
	if !logging.IsValidLevel(c.LogLevel) {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, source, c.LogLevel)
	}
	return nil
}

func validateURL(source string, key string, raw string, schemes ...string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !slices.Contains(schemes, u.Scheme) || (u.Scheme != "file" && u.Host == "") {
		return fmt.Errorf(messages.ConfigURLInvalidFmt, source, key, raw, strings.Join(schemes, ", "))
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolvePathFmt, path, err)
	}
	return expanded, nil
}
