package render

import (
	"errors"
	"testing"
)

// TestDecodeBody tests charset handling of the meta media type.
func TestDecodeBody(t *testing.T) {
	t.Parallel()

	t.Run("no charset passes through", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeBody("text/gemini", "héllo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "héllo" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("utf-8 charset passes through", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeBody("text/gemini; charset=UTF-8", "héllo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "héllo" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("latin-1 body is decoded", func(t *testing.T) {
		t.Parallel()

		// 0xE9 is "é" in ISO-8859-1.
		raw := "caf\xe9"
		got, err := DecodeBody("text/gemini; charset=iso-8859-1", raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "café" {
			t.Errorf("got %q, want 'café'", got)
		}
	})

	t.Run("free-text meta passes through", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeBody("something went wrong", "body")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "body" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unknown charset fails", func(t *testing.T) {
		t.Parallel()
		if _, err := DecodeBody("text/gemini; charset=not-a-charset", "body"); !errors.Is(err, ErrUnknownCharset) {
			t.Errorf("got %v, want ErrUnknownCharset", err)
		}
	})
}
