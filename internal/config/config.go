package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/bundle-tools/internal/version"
)

// Config holds the packaging settings shared by the bundle binaries.
type Config struct {
	// DocsBaseURL is the URL prefix platform documents are downloaded from.
	DocsBaseURL string `yaml:"docs_base_url"`
	// UserAgent is sent with outbound HTTP requests.
	UserAgent string `yaml:"user_agent"`
	// Timeout bounds a single document download, connection time included.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the settings file looked up in the current
	// directory when no explicit path is given.
	DefaultConfigFilename = "bundle-tools.yaml"

	// DefaultDocsBaseURL is where platform documents live unless overridden.
	DefaultDocsBaseURL = "https://github.com/ZaparooProject/zaparoo.org/raw/refs/heads/main/docs/platforms/"

	// DefaultTimeout bounds a single document download.
	DefaultTimeout = 30 * time.Second

	// DefaultFilePermissions is used for files written into build directories.
	DefaultFilePermissions = 0o600

	// DefaultDirPermissions is used for directories created inside build directories.
	DefaultDirPermissions = 0o750
)

var errConfigIsNotSet = errors.New("configuration is not set")

// Default returns the built-in settings used when no file overrides them.
func Default() *Config {
	return &Config{
		DocsBaseURL: DefaultDocsBaseURL,
		UserAgent:   version.UserAgent(),
		Timeout:     DefaultTimeout,
	}
}

// Load reads settings from the file at path and validates them.
// An empty path falls back to DefaultConfigFilename in the current directory
// and, when that file does not exist either, to the built-in defaults.
// An explicitly provided path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the file at path in YAML format.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(path, contents, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for fields left unset.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.DocsBaseURL == "" {
		cfg.DocsBaseURL = DefaultDocsBaseURL
	}

	if _, err := url.ParseRequestURI(cfg.DocsBaseURL); err != nil {
		return fmt.Errorf("invalid docs base URL: %w", err)
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return nil
}
