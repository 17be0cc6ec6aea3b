package browser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// TargetKind discriminates the Target variants.
type TargetKind int

const (
	// TargetNavigate is a location the session can fetch.
	TargetNavigate TargetKind = iota

	// TargetExternal is a non-gemini reference to hand to the OS opener.
	// Choosing one is a no-navigation outcome: the current location does
	// not change.
	TargetExternal
)

// Target is the closed result of resolving a link string: either a
// navigable Location or an external reference for the opener.
type Target struct {
	Kind     TargetKind
	Location gemini.Location // set when Kind is TargetNavigate
	External string          // set when Kind is TargetExternal
}

// Resolve resolves a raw link string against the session's current
// location. The string may come from a document link line, a redirect
// meta field, or typed user input; all three go through the same rules:
//
//  1. A fully-qualified gemini URL navigates directly, except that a link
//     to the current location itself resolves to the previous history
//     entry (self-referential links act as "back").
//  2. A fully-qualified URL with any other scheme becomes TargetExternal.
//  3. "//host/path" combines the current scheme with the network path.
//  4. "/path" joins as an absolute path on the current host.
//  5. Anything else joins as "./<raw>", preserving the current
//     directory context.
func (s *Session) Resolve(raw string) (Target, error) {
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		if u.Scheme != gemini.Scheme {
			return Target{Kind: TargetExternal, External: raw}, nil
		}

		loc, err := gemini.ParseLocation(raw)
		if err != nil {
			return Target{}, fmt.Errorf("resolve %q: %w", raw, err)
		}
		if loc.Equal(s.current) {
			prev, err := s.Previous()
			if err != nil {
				return Target{}, err
			}
			return Target{Kind: TargetNavigate, Location: prev}, nil
		}
		return Target{Kind: TargetNavigate, Location: loc}, nil
	}

	if s.current.IsZero() {
		return Target{}, ErrNoHistory
	}

	var (
		loc gemini.Location
		err error
	)
	switch {
	case strings.HasPrefix(raw, "//"):
		loc, err = gemini.ParseLocation(s.current.Scheme() + ":" + raw)
	case strings.HasPrefix(raw, "/"):
		loc, err = s.current.Resolve(raw)
	default:
		loc, err = s.current.Resolve("./" + raw)
	}
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q: %v", ErrRelativeResolution, raw, err)
	}
	return Target{Kind: TargetNavigate, Location: loc}, nil
}
