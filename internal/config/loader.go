package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched for in the
// current and home directories.
const DefaultConfigFile = ".gemini"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers treat it as fatal only when the path was explicit.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the YAML configuration file. Pointer fields distinguish
// "absent" from zero so the file only overrides what it actually sets.
//
//	pager: bat
//	max_redirects: 10
//	timeout: 1m30s
//	proxy: 127.0.0.1:9050
//	history_dir: /tmp/gemini-history
//	no_history: false
type File struct {
	Pager        *string `yaml:"pager"`
	MaxRedirects *int    `yaml:"max_redirects"`
	Timeout      *string `yaml:"timeout"`
	Proxy        *string `yaml:"proxy"`
	HistoryDir   *string `yaml:"history_dir"`
	NoHistory    *bool   `yaml:"no_history"`
}

// LoadFile reads and parses the configuration file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional.
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// FindConfigFile locates the configuration file: the explicit path when
// given, otherwise .gemini in the current directory, then in the home
// directory. Returns the empty string when nothing is found.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply overlays the file's set fields onto the config.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}
	if f.Pager != nil {
		c.Pager = *f.Pager
	}
	if f.MaxRedirects != nil {
		c.MaxRedirects = *f.MaxRedirects
	}
	if f.Timeout != nil {
		d, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDuration, *f.Timeout)
		}
		c.Timeout = d
	}
	if f.Proxy != nil {
		c.ProxyAddress = *f.Proxy
	}
	if f.HistoryDir != nil {
		c.HistoryDir = *f.HistoryDir
	}
	if f.NoHistory != nil {
		c.NoHistory = *f.NoHistory
	}
	return nil
}
