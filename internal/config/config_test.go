package config

import (
	"errors"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	got := NewConfig()

	if got.Pager != DefaultPager {
		t.Errorf("Pager: want %q, got %q", DefaultPager, got.Pager)
	}
	if got.MaxRedirects != DefaultMaxRedirects {
		t.Errorf("MaxRedirects: want %d, got %d", DefaultMaxRedirects, got.MaxRedirects)
	}
	if got.Timeout != DefaultTimeout {
		t.Errorf("Timeout: want %s, got %s", DefaultTimeout, got.Timeout)
	}
	if got.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("MaxBodySize: want %d, got %d", DefaultMaxBodySize, got.MaxBodySize)
	}
	if got.HistoryDir == "" {
		t.Error("HistoryDir: want non-empty default, got empty")
	}
	if got.ProxyAddress != "" {
		t.Errorf("ProxyAddress: want empty, got %q", got.ProxyAddress)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "default config is valid",
			mutate:  func(_ *Config) {},
			wantErr: nil,
		},
		{
			name:    "empty pager",
			mutate:  func(c *Config) { c.Pager = "" },
			wantErr: ErrNoPager,
		},
		{
			name:    "zero max redirects",
			mutate:  func(c *Config) { c.MaxRedirects = 0 },
			wantErr: ErrInvalidMaxRedirects,
		},
		{
			name:    "negative max redirects",
			mutate:  func(c *Config) { c.MaxRedirects = -1 },
			wantErr: ErrInvalidMaxRedirects,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative body cap",
			mutate:  func(c *Config) { c.MaxBodySize = -1 },
			wantErr: ErrInvalidMaxBodySize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConfig()
			tt.mutate(c)

			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(): want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigApplyTimeout(t *testing.T) {
	t.Parallel()

	timeout := "90s"
	c := NewConfig()
	if err := c.Apply(&File{Timeout: &timeout}); err != nil {
		t.Fatalf("Apply(): unexpected error: %v", err)
	}
	if want := 90 * time.Second; c.Timeout != want {
		t.Errorf("Timeout: want %s, got %s", want, c.Timeout)
	}
}
