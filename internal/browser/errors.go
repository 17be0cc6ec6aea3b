package browser

import "errors"

// Navigation errors.
var (
	// ErrNoHistory is returned when an operation needs a current location
	// but nothing has been visited yet.
	ErrNoHistory = errors.New("no location visited yet")

	// ErrNoPreviousLocation is returned when going back (or resolving a
	// self-referential link) and the history holds no earlier entry.
	ErrNoPreviousLocation = errors.New("no previous location in history")

	// ErrTooManyRedirects is returned when a redirect chain exhausts the
	// configured bound and no last-known-good location exists to fall
	// back to.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrForeignRedirect is returned when a server redirects to a
	// non-gemini target and there is no last-known-good location left to
	// return to.
	ErrForeignRedirect = errors.New("redirected to a non-gemini target")

	// ErrRelativeResolution is returned when a relative link cannot be
	// joined against the current location.
	ErrRelativeResolution = errors.New("cannot resolve relative link")

	// ErrServerFailure is returned for temporary-failure, permanent-failure,
	// and certificate-required responses. The wrapped message carries the
	// server's meta text.
	ErrServerFailure = errors.New("server reported failure")

	// ErrUnknownStatus is returned when the server sends a status code
	// outside every defined class.
	ErrUnknownStatus = errors.New("invalid status code from server")

	// ErrInputNotSupported is returned when the server asks for input but
	// the session has no prompter (non-interactive use).
	ErrInputNotSupported = errors.New("server requested input but no prompt is available")
)
