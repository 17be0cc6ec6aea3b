package gemini

import (
	"errors"
	"strings"
	"testing"
)

// TestParseResponse tests response parsing.
func TestParseResponse(t *testing.T) {
	t.Parallel()

	t.Run("empty response", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResponse(""); !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("got %v, want ErrEmptyResponse", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		t.Parallel()
		resp, err := ParseResponse("20 text/gemini\r\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Code != 20 {
			t.Errorf("got code %d, want 20", resp.Code)
		}
		if resp.Class != ClassSuccess {
			t.Errorf("got class %v, want ClassSuccess", resp.Class)
		}
		if resp.Meta != "text/gemini" {
			t.Errorf("got meta %q, want 'text/gemini'", resp.Meta)
		}
		if resp.HasBody() {
			t.Errorf("expected no body, got %q", resp.Body)
		}
	})

	t.Run("temporary failure with body", func(t *testing.T) {
		t.Parallel()
		resp, err := ParseResponse("44 slow down\r\nbody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Class != ClassTemporaryFailure {
			t.Errorf("got class %v, want ClassTemporaryFailure", resp.Class)
		}
		if resp.Meta != "slow down" {
			t.Errorf("got meta %q, want 'slow down'", resp.Meta)
		}
		if resp.Body != "body" {
			t.Errorf("got body %q, want 'body'", resp.Body)
		}
	})

	t.Run("permanent failure", func(t *testing.T) {
		t.Parallel()
		resp, err := ParseResponse("51 not found\r\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Class != ClassPermanentFailure {
			t.Errorf("got class %v, want ClassPermanentFailure", resp.Class)
		}
	})

	t.Run("missing status code", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResponse(" meta only"); !errors.Is(err, ErrMissingStatusCode) {
			t.Errorf("got %v, want ErrMissingStatusCode", err)
		}
	})

	t.Run("non-numeric status code", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResponse("abc meta"); !errors.Is(err, ErrInvalidStatusCode) {
			t.Errorf("got %v, want ErrInvalidStatusCode", err)
		}
	})

	t.Run("status code above 255", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResponse("300 too big"); !errors.Is(err, ErrInvalidStatusCode) {
			t.Errorf("got %v, want ErrInvalidStatusCode", err)
		}
	})

	t.Run("negative status code", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResponse("-1 negative"); !errors.Is(err, ErrInvalidStatusCode) {
			t.Errorf("got %v, want ErrInvalidStatusCode", err)
		}
	})

	t.Run("missing meta description", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResponse("20"); !errors.Is(err, ErrMissingMetaDescription) {
			t.Errorf("got %v, want ErrMissingMetaDescription", err)
		}
	})

	t.Run("meta keeps embedded spaces", func(t *testing.T) {
		t.Parallel()
		resp, err := ParseResponse("10 Enter your search query\r\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Meta != "Enter your search query" {
			t.Errorf("got meta %q", resp.Meta)
		}
	})

	t.Run("annotates link lines with indices", func(t *testing.T) {
		t.Parallel()
		raw := "20 text/gemini\r\n# Heading\r\n=> /a.gmi First\r\nplain text\r\n=> /b.gmi\r\n"
		resp, err := ParseResponse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(resp.Links) != 2 {
			t.Fatalf("got %d links, want 2", len(resp.Links))
		}
		if resp.Links[0].Href != "/a.gmi" || resp.Links[0].Name != "First" {
			t.Errorf("got link 0 %+v", resp.Links[0])
		}
		if resp.Links[1].Href != "/b.gmi" || resp.Links[1].Name != "" {
			t.Errorf("got link 1 %+v", resp.Links[1])
		}

		if !strings.Contains(resp.Body, "(0) => /a.gmi First") {
			t.Errorf("body missing (0) marker: %q", resp.Body)
		}
		if !strings.Contains(resp.Body, "(1) => /b.gmi") {
			t.Errorf("body missing (1) marker: %q", resp.Body)
		}
		if !strings.Contains(resp.Body, "# Heading") {
			t.Errorf("non-link line modified: %q", resp.Body)
		}
		if !strings.Contains(resp.Body, "plain text") {
			t.Errorf("non-link line modified: %q", resp.Body)
		}
	})

	t.Run("malformed link line passes through unannotated", func(t *testing.T) {
		t.Parallel()
		resp, err := ParseResponse("20 text/gemini\n=>\n=> /real.gmi Real")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Links) != 1 {
			t.Fatalf("got %d links, want 1", len(resp.Links))
		}
		if !strings.Contains(resp.Body, "(0) => /real.gmi Real") {
			t.Errorf("valid link not indexed from zero: %q", resp.Body)
		}
	})

	t.Run("accepts bare LF line endings", func(t *testing.T) {
		t.Parallel()
		resp, err := ParseResponse("30 /elsewhere\nignored")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Class != ClassRedirect {
			t.Errorf("got class %v, want ClassRedirect", resp.Class)
		}
		if resp.Meta != "/elsewhere" {
			t.Errorf("got meta %q, want '/elsewhere'", resp.Meta)
		}
	})
}
