package gemini

import (
	"errors"
	"testing"
)

// TestParseLocation tests location parsing and normalization.
func TestParseLocation(t *testing.T) {
	t.Parallel()

	t.Run("full location", func(t *testing.T) {
		t.Parallel()
		loc, err := ParseLocation("gemini://example.com/docs/index.gmi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc.Scheme() != "gemini" {
			t.Errorf("got scheme %q", loc.Scheme())
		}
		if loc.Host() != "example.com" {
			t.Errorf("got host %q", loc.Host())
		}
		if loc.Path() != "/docs/index.gmi" {
			t.Errorf("got path %q", loc.Path())
		}
	})

	t.Run("bare host gets gemini scheme", func(t *testing.T) {
		t.Parallel()
		loc, err := ParseLocation("example.com/docs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc.String() != "gemini://example.com/docs" {
			t.Errorf("got %q", loc.String())
		}
	})

	t.Run("bare host with port gets gemini scheme", func(t *testing.T) {
		t.Parallel()
		loc, err := ParseLocation("example.com:1966")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc.Host() != "example.com" {
			t.Errorf("got host %q", loc.Host())
		}
		if loc.Port() != "1966" {
			t.Errorf("got port %q", loc.Port())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseLocation("  "); !errors.Is(err, ErrEmptyLocation) {
			t.Errorf("got %v, want ErrEmptyLocation", err)
		}
	})

	t.Run("missing host", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseLocation("gemini:///path-only"); !errors.Is(err, ErrMissingHost) {
			t.Errorf("got %v, want ErrMissingHost", err)
		}
	})
}

// TestLocationEqual tests structural equality.
func TestLocationEqual(t *testing.T) {
	t.Parallel()

	a := MustParseLocation("gemini://example.com/page")
	b := MustParseLocation("gemini://example.com/page")
	c := MustParseLocation("gemini://example.com/other")

	if !a.Equal(b) {
		t.Error("identical locations not equal")
	}
	if a.Equal(c) {
		t.Error("different locations reported equal")
	}

	// A bare host and its root path name the same resource.
	bare := MustParseLocation("gemini://example.com")
	root := MustParseLocation("gemini://example.com/")
	if !bare.Equal(root) {
		t.Error("bare host and root path not equal")
	}
	if bare.Path() != "/" {
		t.Errorf("bare host path not normalized: %q", bare.Path())
	}
}

// TestLocationWithQuery tests query replacement and immutability.
func TestLocationWithQuery(t *testing.T) {
	t.Parallel()

	base := MustParseLocation("gemini://example.com/search")
	got := base.WithQuery("two words")

	if got.Query() != "two+words" {
		t.Errorf("got query %q", got.Query())
	}
	if base.Query() != "" {
		t.Errorf("receiver mutated: %q", base.Query())
	}
}

// TestLocationResolve tests reference resolution against a base location.
func TestLocationResolve(t *testing.T) {
	t.Parallel()

	base := MustParseLocation("gemini://host/dir/page")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"absolute path", "/foo", "gemini://host/foo"},
		{"relative keeps directory", "./bar", "gemini://host/dir/bar"},
		{"parent directory", "../up", "gemini://host/up"},
		{"absolute reference replaces all", "gemini://other/x", "gemini://other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := base.Resolve(tt.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

// TestLocationRequestTarget tests the request-line form of a location.
func TestLocationRequestTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  string
		want string
	}{
		{"plain", "gemini://example.com/page", "gemini://example.com/page"},
		{"explicit port kept", "gemini://example.com:1966/page", "gemini://example.com:1966/page"},
		{"query included", "gemini://example.com/search?answer", "gemini://example.com/search?answer"},
		{"empty path normalized to root", "gemini://example.com", "gemini://example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MustParseLocation(tt.loc).RequestTarget(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
