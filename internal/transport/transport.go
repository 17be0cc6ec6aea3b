package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"golang.org/x/net/proxy"

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// Default limits. Gemini responses are small text documents; the body cap
// exists to bound memory on a misbehaving server, not to truncate real
// content.
const (
	// DefaultTimeout applies to the whole round-trip: dial, handshake,
	// write, and drain.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize caps how much of the response stream is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Client performs Gemini round-trips. It is stateless between fetches:
// every fetch opens a fresh connection, as the protocol requires.
type Client struct {
	timeout      time.Duration
	proxyAddress string
	maxBodySize  int64
	tlsConfig    *tls.Config
}

// Options configures a Client. The zero value gives direct connections
// with the default timeout and body cap.
type Options struct {
	// Timeout bounds one complete round-trip. Zero means DefaultTimeout.
	Timeout time.Duration

	// ProxyAddress routes connections through a SOCKS5 proxy in
	// "host:port" form (e.g. a local Tor daemon at 127.0.0.1:9050).
	// Empty means direct connections.
	ProxyAddress string

	// MaxBodySize caps the bytes read from the response stream.
	// Zero means DefaultMaxBodySize.
	MaxBodySize int64

	// TLSConfig overrides the TLS client configuration. Nil means the
	// Gemini default: no certificate verification, TLS 1.2 minimum.
	TLSConfig *tls.Config
}

// NewClient creates a Client. The proxy address, when given, is validated
// for shape only; connectivity is not checked until the first fetch.
func NewClient(opts Options) (*Client, error) {
	if opts.ProxyAddress != "" {
		if _, _, err := net.SplitHostPort(opts.ProxyAddress); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, opts.ProxyAddress)
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxBody := opts.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}

	return &Client{
		timeout:      timeout,
		proxyAddress: opts.ProxyAddress,
		maxBodySize:  maxBody,
		tlsConfig:    opts.TLSConfig,
	}, nil
}

// Fetch opens a secured stream to the location's host, sends the request
// line, and drains the response. The caller parses the returned text.
func (c *Client) Fetch(ctx context.Context, loc gemini.Location) (string, error) {
	host := loc.Host()
	if host == "" {
		return "", gemini.ErrMissingHost
	}
	port := loc.Port()
	if port == "" {
		port = strconv.Itoa(gemini.DefaultPort)
	}
	addr := net.JoinHostPort(host, port)

	conn, err := c.dial(ctx, addr)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConnect, addr, err)
	}
	defer conn.Close() //nolint:errcheck // Read side already drained.

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", fmt.Errorf("set deadline: %w", err)
	}

	tlsConn := tls.Client(conn, c.tlsConfigFor(host))
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHandshake, addr, err)
	}

	if _, err := tlsConn.Write([]byte(loc.RequestTarget() + "\r\n")); err != nil {
		return "", fmt.Errorf("send request to %s: %w", addr, err)
	}

	// No framing: the server closing the stream ends the response.
	raw, err := io.ReadAll(io.LimitReader(tlsConn, c.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", addr, err)
	}
	return string(raw), nil
}

// dial opens the TCP leg, directly or through the configured SOCKS5 proxy.
func (c *Client) dial(ctx context.Context, addr string) (net.Conn, error) {
	netDialer := &net.Dialer{Timeout: c.timeout}
	if c.proxyAddress == "" {
		return netDialer.DialContext(ctx, "tcp", addr)
	}

	// Tor's SOCKS port needs no authentication.
	dialer, err := proxy.SOCKS5("tcp", c.proxyAddress, nil, netDialer)
	if err != nil {
		return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
	}
	if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
		return contextDialer.DialContext(ctx, "tcp", addr)
	}
	return dialer.Dial("tcp", addr)
}

// tlsConfigFor returns the TLS configuration for a connection to host.
func (c *Client) tlsConfigFor(host string) *tls.Config {
	if c.tlsConfig != nil {
		cfg := c.tlsConfig.Clone()
		if cfg.ServerName == "" {
			cfg.ServerName = host
		}
		return cfg
	}
	return &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true, //nolint:gosec // Gemini servers use self-signed certificates.
		MinVersion:         tls.VersionTLS12,
	}
}
