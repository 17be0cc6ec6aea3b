package gemini

import (
	"strconv"
	"strings"
)

// linkMarker introduces a gemtext link line.
const linkMarker = "=>"

// Link is an href with an optional display name, extracted from a single
// body line. Links are ordered by first appearance; the positional index
// assigned during extraction matches the index annotated into the body by
// ParseResponse.
type Link struct {
	// Href is the link target, possibly relative to the document location.
	Href string

	// Name is the display text following the href. Empty when the link
	// line carried no label.
	Name string
}

// parseLinkLine parses one body line as a link line.
// It reports false when the line is not a link line at all, or when it is
// a bare marker with no href token. Malformed link lines are deliberately
// skipped rather than failing the whole response.
func parseLinkLine(line string) (Link, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, linkMarker) {
		return Link{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, linkMarker))
	if rest == "" {
		return Link{}, false
	}

	// Split on the first whitespace run: href, then the label as-is.
	href := rest
	name := ""
	if i := strings.IndexFunc(rest, isSpace); i >= 0 {
		href = rest[:i]
		name = strings.TrimLeftFunc(rest[i:], isSpace)
	}
	return Link{Href: href, Name: name}, true
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// ExtractLinks scans body lines for link lines and returns the valid
// links in document order.
func ExtractLinks(lines []string) []Link {
	var links []Link
	for _, line := range lines {
		if link, ok := parseLinkLine(line); ok {
			links = append(links, link)
		}
	}
	return links
}

// annotateLinks walks body lines once, collecting valid links and tagging
// each of their lines with its zero-based index, e.g. "(0) => /a.gmi Home".
// Non-link lines and malformed link lines pass through unchanged, so the
// annotated indices always agree with the extracted link order.
func annotateLinks(lines []string) ([]string, []Link) {
	annotated := make([]string, len(lines))
	var links []Link
	for i, line := range lines {
		link, ok := parseLinkLine(line)
		if !ok {
			annotated[i] = line
			continue
		}
		annotated[i] = "(" + strconv.Itoa(len(links)) + ") " + strings.TrimSpace(line)
		links = append(links, link)
	}
	return annotated, links
}
