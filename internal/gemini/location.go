package gemini

import (
	"net/url"
	"strings"
)

// Scheme is the URL scheme of the Gemini protocol.
const Scheme = "gemini"

// DefaultPort is the TCP port used when a location does not name one.
const DefaultPort = 1965

// Location is an immutable value identifying a retrievable resource:
// scheme, host, optional port, path, and optional query. Equality is
// structural. Locations are produced by ParseLocation or by Resolve and
// are never mutated; WithQuery returns a new value.
type Location struct {
	u url.URL
}

// ParseLocation parses raw into a Location. Input without a scheme is
// assumed to be a bare host/path reference and gets the Gemini scheme
// prepended, so "example.com/docs" and "gemini://example.com/docs" parse
// to the same value. The host component is required.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, ErrEmptyLocation
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, err
	}

	// "example.com/foo" parses as a path and "example.com:1965" as an
	// opaque URL; both mean a bare authority without a scheme.
	if u.Scheme == "" || u.Opaque != "" {
		u, err = url.Parse(Scheme + "://" + raw)
		if err != nil {
			return Location{}, err
		}
	}

	if u.Host == "" {
		return Location{}, ErrMissingHost
	}

	// "gemini://host" and "gemini://host/" are the same resource; the
	// normalized form keeps structural equality honest.
	if u.Path == "" {
		u.Path = "/"
	}
	return Location{u: *u}, nil
}

// MustParseLocation parses raw or panics. Use only for known-valid
// locations in tests.
func MustParseLocation(raw string) Location {
	l, err := ParseLocation(raw)
	if err != nil {
		panic(err)
	}
	return l
}

// Scheme returns the URL scheme.
func (l Location) Scheme() string { return l.u.Scheme }

// Host returns the host without the port.
func (l Location) Host() string { return l.u.Hostname() }

// Port returns the explicit port, or the empty string when none is set.
func (l Location) Port() string { return l.u.Port() }

// Path returns the path component.
func (l Location) Path() string { return l.u.Path }

// Query returns the raw query component without the leading "?".
func (l Location) Query() string { return l.u.RawQuery }

// String returns the full textual form of the location.
func (l Location) String() string { return l.u.String() }

// IsZero reports whether this is the zero Location.
func (l Location) IsZero() bool { return l.u == (url.URL{}) }

// Equal reports whether two locations are structurally equal.
func (l Location) Equal(other Location) bool {
	return l.u.String() == other.u.String()
}

// WithQuery returns a copy of the location with its query component set
// to the escaped form of q. The receiver is unchanged.
func (l Location) WithQuery(q string) Location {
	u := l.u
	u.RawQuery = url.QueryEscape(q)
	return Location{u: u}
}

// Resolve interprets ref as a reference relative to the location and
// returns the joined absolute location. A ref of "./sub" keeps the
// current directory context while "/sub" resolves from the root.
func (l Location) Resolve(ref string) (Location, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return Location{}, err
	}
	base := l.u
	resolved := *base.ResolveReference(refURL)
	if resolved.Path == "" && resolved.Host != "" {
		resolved.Path = "/"
	}
	return Location{u: resolved}, nil
}

// RequestTarget returns the absolute-URL form sent on the request line:
// scheme://host[:port]<path>[?query]. The port appears only when the
// location names one explicitly; the query is included because the Input
// flow transports the user's reply in it.
func (l Location) RequestTarget() string {
	var b strings.Builder
	b.WriteString(l.u.Scheme)
	b.WriteString("://")
	b.WriteString(l.u.Host)
	b.WriteString(l.u.EscapedPath())
	if l.u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(l.u.RawQuery)
	}
	return b.String()
}
