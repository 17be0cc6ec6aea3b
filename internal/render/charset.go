package render

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnknownCharset is returned when the meta field names a charset the
// IANA registry does not know. Callers typically fall back to the raw
// body.
var ErrUnknownCharset = errors.New("unknown charset in media type")

// DecodeBody decodes body according to the charset parameter of the
// media type in meta. A missing or UTF-8 charset returns the body
// unchanged, as does a meta string that is not a media type at all
// (failure responses carry free text there).
func DecodeBody(meta, body string) (string, error) {
	_, params, err := mime.ParseMediaType(meta)
	if err != nil {
		return body, nil
	}

	charset := params["charset"]
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return body, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}

	decoded, err := enc.NewDecoder().String(body)
	if err != nil {
		return "", fmt.Errorf("decode %s body: %w", charset, err)
	}
	return decoded, nil
}
