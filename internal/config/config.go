package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. The navigation defaults mirror the
// protocol's conventions; the transport defaults are generous enough for
// slow capsules without hanging the terminal indefinitely.
const (
	// AppName is used for XDG directory paths.
	AppName = "gemini"

	// DefaultPager is the program documents are displayed through.
	DefaultPager = "less"

	// DefaultMaxRedirects bounds a redirect chain before the session
	// gives up and returns to the last working location.
	DefaultMaxRedirects = 5

	// DefaultTimeout bounds one complete fetch round-trip.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize caps the response bytes read per fetch.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Config holds all options for one browser run. It is populated from
// defaults, then the configuration file, then CLI flags, and passed
// through the application by dependency injection.
type Config struct {
	// Pager is the display program: less, more, bat, or nvim.
	Pager string

	// MaxRedirects bounds consecutive redirect responses.
	MaxRedirects int

	// Timeout is the per-fetch connection timeout.
	Timeout time.Duration

	// ProxyAddress routes all connections through a SOCKS5 proxy in
	// "host:port" form (e.g. a Tor daemon at 127.0.0.1:9050). Empty
	// means direct connections.
	ProxyAddress string

	// MaxBodySize caps the response bytes read per fetch.
	MaxBodySize int64

	// HistoryDir is the directory holding the visit journal database.
	// Empty means the XDG data directory.
	HistoryDir string

	// NoHistory disables the visit journal entirely.
	NoHistory bool

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Pager:        DefaultPager,
		MaxRedirects: DefaultMaxRedirects,
		Timeout:      DefaultTimeout,
		MaxBodySize:  DefaultMaxBodySize,
		HistoryDir:   XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for the browser, following
// the XDG Base Directory Specification.
// On Linux: ~/.local/share/gemini
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the browser.
// On Linux: ~/.config/gemini
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
// It runs once after flag and file merging, before any fetch.
func (c *Config) Validate() error {
	if c.Pager == "" {
		return ErrNoPager
	}
	if c.MaxRedirects <= 0 {
		return ErrInvalidMaxRedirects
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}
