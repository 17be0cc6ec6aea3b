package gemini

import "strconv"

// StatusClass is the coarse category derived from a numeric status code.
// Navigation routing is an exhaustive switch over this type; adding a class
// must be accompanied by a new case in the session's step function.
type StatusClass int

const (
	// ClassUnknown covers every code outside the six defined ranges.
	// The session treats it as a fatal protocol violation.
	ClassUnknown StatusClass = iota

	// ClassInput (10-19) asks the client to resend the request with user
	// input in the query component.
	ClassInput

	// ClassSuccess (20-29) carries a body; meta is the media type.
	ClassSuccess

	// ClassRedirect (30-39) carries the redirect target in meta.
	ClassRedirect

	// ClassTemporaryFailure (40-49) indicates the request may succeed later.
	ClassTemporaryFailure

	// ClassPermanentFailure (50-59) indicates the request should not be
	// repeated.
	ClassPermanentFailure

	// ClassCertificateRequired (60-69) asks for a client certificate.
	// Certificate flows are reported, not implemented.
	ClassCertificateRequired
)

// StatusInputVisible is the one Input code whose prompt reply is echoed.
// Every other code in the Input range is prompted with masking, matching
// the sensitive-input convention (code 11).
const StatusInputVisible = 10

// Classify maps a numeric status code to its StatusClass.
// The mapping is total: every integer lands in exactly one class.
func Classify(code int) StatusClass {
	switch {
	case code >= 10 && code <= 19:
		return ClassInput
	case code >= 20 && code <= 29:
		return ClassSuccess
	case code >= 30 && code <= 39:
		return ClassRedirect
	case code >= 40 && code <= 49:
		return ClassTemporaryFailure
	case code >= 50 && code <= 59:
		return ClassPermanentFailure
	case code >= 60 && code <= 69:
		return ClassCertificateRequired
	default:
		return ClassUnknown
	}
}

// String returns a human-readable name for the status class.
func (c StatusClass) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassSuccess:
		return "success"
	case ClassRedirect:
		return "redirect"
	case ClassTemporaryFailure:
		return "temporary failure"
	case ClassPermanentFailure:
		return "permanent failure"
	case ClassCertificateRequired:
		return "certificate required"
	default:
		return "unknown (" + strconv.Itoa(int(c)) + ")"
	}
}
