package transport

import "errors"

// Transport errors. All of them are fatal to the navigation step that
// triggered the fetch; the session never retries a failed round-trip.
var (
	// ErrConnect is returned when the TCP (or proxied) connection to the
	// target cannot be established.
	ErrConnect = errors.New("connection failed")

	// ErrHandshake is returned when the TLS handshake fails.
	ErrHandshake = errors.New("TLS handshake failed")

	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is
	// not in "host:port" form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address: must be host:port")
)
