package gemini

import "errors"

// Response parsing errors.
// These are returned by ParseResponse and describe malformed response
// framing. All of them are fatal to the navigation step that triggered
// the fetch; the session never retries a malformed response.
var (
	// ErrEmptyResponse is returned when the raw response contains no lines.
	ErrEmptyResponse = errors.New("response is empty")

	// ErrMissingStatusCode is returned when the header line carries no
	// status token before the first space.
	ErrMissingStatusCode = errors.New("missing status code in response")

	// ErrInvalidStatusCode is returned when the status token is not an
	// integer in [0,255].
	ErrInvalidStatusCode = errors.New("invalid status code in response")

	// ErrMissingMetaDescription is returned when no text follows the
	// status token on the header line.
	ErrMissingMetaDescription = errors.New("missing meta description in response")
)

// Location errors.
var (
	// ErrEmptyLocation is returned when parsing an empty location string.
	ErrEmptyLocation = errors.New("location cannot be empty")

	// ErrMissingHost is returned when a location has no host component.
	ErrMissingHost = errors.New("missing host in location")
)
