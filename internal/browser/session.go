package browser

import (
	"context"
	"log/slog"

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// DefaultMaxRedirects bounds a redirect chain before the session falls
// back to the last-known-good location.
const DefaultMaxRedirects = 5

// Fetcher performs one request/response round-trip for a location and
// returns the raw response text. Implementations must respect context
// cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, loc gemini.Location) (string, error)
}

// Prompter obtains one line of user input. Line echoes the reply,
// Secret masks it. Which one is used depends only on the status code of
// the input response, never on the prompt content.
type Prompter interface {
	Line(prompt string) (string, error)
	Secret(prompt string) (string, error)
}

// Opener hands a non-gemini target to a host-level opener. The session
// fires and forgets: failures do not change navigation state.
type Opener interface {
	Open(target string) error
}

// Recorder receives one entry per completed fetch. It is a write-only
// journal; the session never reads it back, so navigation semantics stay
// purely in-memory.
type Recorder interface {
	Record(ctx context.Context, loc gemini.Location, code int, meta string) error
}

// Session holds the mutable navigation state for one browsing run:
// current location, append-only visit history, redirect counter, and the
// last location whose fetch succeeded. A Session is not safe for
// concurrent use; the navigation loop is strictly sequential and owns it
// exclusively.
type Session struct {
	fetcher  Fetcher
	prompter Prompter
	opener   Opener
	recorder Recorder
	logger   *slog.Logger

	current        gemini.Location
	history        []gemini.Location
	redirects      int
	maxRedirects   int
	lastWorking    gemini.Location
	hasLastWorking bool
}

// Options configures a Session. The zero value is usable: collaborators
// are optional and MaxRedirects falls back to DefaultMaxRedirects.
type Options struct {
	// MaxRedirects bounds consecutive redirect responses. Zero or
	// negative means DefaultMaxRedirects.
	MaxRedirects int

	// Prompter answers input responses. When nil, input responses fail
	// the step with ErrInputNotSupported.
	Prompter Prompter

	// Opener receives non-gemini targets. When nil, they are dropped.
	Opener Opener

	// Recorder journals completed fetches. When nil, nothing is recorded.
	Recorder Recorder

	// Logger receives debug output. When nil, slog.Default() is used.
	Logger *slog.Logger
}

// NewSession creates a Session that fetches through the given Fetcher.
func NewSession(fetcher Fetcher, opts Options) *Session {
	maxRedirects := opts.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = DefaultMaxRedirects
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		fetcher:      fetcher,
		prompter:     opts.Prompter,
		opener:       opts.Opener,
		recorder:     opts.Recorder,
		logger:       logger,
		maxRedirects: maxRedirects,
	}
}

// Current returns the location most recently handed to Step.
// It fails with ErrNoHistory before the first step.
func (s *Session) Current() (gemini.Location, error) {
	if len(s.history) == 0 {
		return gemini.Location{}, ErrNoHistory
	}
	return s.history[len(s.history)-1], nil
}

// Previous returns the history entry immediately before the current one.
// It fails with ErrNoPreviousLocation when fewer than two locations have
// been visited.
func (s *Session) Previous() (gemini.Location, error) {
	if len(s.history) < 2 {
		return gemini.Location{}, ErrNoPreviousLocation
	}
	return s.history[len(s.history)-2], nil
}

// Back resolves the "go back" operation: the next-to-last history entry.
// The current location is unchanged; the caller navigates by feeding the
// returned location into Step.
func (s *Session) Back() (gemini.Location, error) {
	return s.Previous()
}

// Reload resolves the "reload" operation: the top of history.
func (s *Session) Reload() (gemini.Location, error) {
	return s.Current()
}

// History returns a copy of the visited locations in order. The history
// is append-only and never deduplicated: navigating to the same location
// twice records two entries.
func (s *Session) History() []gemini.Location {
	out := make([]gemini.Location, len(s.history))
	copy(out, s.history)
	return out
}

// LastWorking returns the most recent location whose fetch classified as
// success, and whether one exists.
func (s *Session) LastWorking() (gemini.Location, bool) {
	return s.lastWorking, s.hasLastWorking
}

// Redirects returns the current redirect counter. It resets to zero on
// every successful non-redirect response.
func (s *Session) Redirects() int {
	return s.redirects
}
