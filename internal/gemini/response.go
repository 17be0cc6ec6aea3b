package gemini

import (
	"strconv"
	"strings"
)

// Response is the parsed result of one fetch: status, meta text, optional
// body, and the links extracted from it. A Response is immutable once
// parsed and lives only for the navigation step that produced it; the
// session never retains one.
type Response struct {
	// Code is the numeric status code from the header line.
	Code int

	// Class is the status class derived from Code.
	Class StatusClass

	// Meta carries the redirect target for ClassRedirect, the input
	// prompt for ClassInput, the media type for ClassSuccess, and a
	// human-readable message for failures.
	Meta string

	// Body is the response body with link lines annotated by their
	// zero-based index. Empty when the response carried no content.
	Body string

	// Links are the valid link lines of the body, in document order.
	Links []Link
}

// HasBody reports whether the response carried any content lines.
func (r *Response) HasBody() bool { return r.Body != "" }

// ParseResponse parses a raw response into a Response.
//
// The first line is split on the first space into a status token and the
// meta string; the remaining lines are rejoined as the body with every
// valid link line annotated by its link index. Line endings may be either
// LF or CRLF.
func ParseResponse(raw string) (*Response, error) {
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyResponse
	}
	header := lines[0]

	token, meta, hasMeta := strings.Cut(header, " ")
	if token == "" {
		return nil, ErrMissingStatusCode
	}

	code, err := strconv.Atoi(token)
	if err != nil || code < 0 || code > 255 {
		return nil, ErrInvalidStatusCode
	}

	if !hasMeta {
		return nil, ErrMissingMetaDescription
	}

	annotated, links := annotateLinks(lines[1:])

	return &Response{
		Code:  code,
		Class: Classify(code),
		Meta:  meta,
		Body:  strings.Join(annotated, "\n"),
		Links: links,
	}, nil
}

// splitLines splits raw on LF boundaries, stripping a trailing CR from
// each line and discarding the empty tail after a final newline.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
