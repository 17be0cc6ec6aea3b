package render

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// annotatedLinkLine matches a body line that ParseResponse tagged with a
// link index, e.g. "(0) => /a.gmi First". The captured group is the
// index into the document's link list.
var annotatedLinkLine = regexp.MustCompile(`^\((\d+)\) *=>`)

// preformatFence toggles gemtext preformatted mode.
const preformatFence = "```"

// WriteMarkdown renders a fetched document as Markdown. Link hrefs are
// resolved against loc so the export stands alone.
func WriteMarkdown(w io.Writer, loc gemini.Location, resp *gemini.Response) error {
	md := markdown.NewMarkdown(w)

	md.H1(loc.String())
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Status", fmt.Sprintf("%d (%s)", resp.Code, resp.Class)},
			{"Meta", resp.Meta},
		},
	})
	md.PlainText("")

	if resp.HasBody() {
		writeBody(md, loc, resp)
	}

	return md.Build()
}

// writeBody converts the annotated gemtext body line by line.
func writeBody(md *markdown.Markdown, loc gemini.Location, resp *gemini.Response) {
	var code []string
	inCode := false

	for _, line := range strings.Split(resp.Body, "\n") {
		if strings.HasPrefix(line, preformatFence) {
			if inCode {
				md.CodeBlocks(markdown.SyntaxHighlightNone, strings.Join(code, "\n"))
				code = nil
			}
			inCode = !inCode
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}

		// Annotated link lines carry their own index, so links render
		// correctly even when earlier link lines sit inside a fence.
		if m := annotatedLinkLine.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n < len(resp.Links) {
				md.BulletList(markdownLink(loc, resp.Links[n]))
				continue
			}
		}

		switch {
		case strings.HasPrefix(line, "###"):
			md.H3(strings.TrimSpace(strings.TrimPrefix(line, "###")))
		case strings.HasPrefix(line, "##"):
			md.H2(strings.TrimSpace(strings.TrimPrefix(line, "##")))
		case strings.HasPrefix(line, "#"):
			md.H2(strings.TrimSpace(strings.TrimPrefix(line, "#")))
		default:
			md.PlainText(line)
		}
	}

	// Unterminated fence: flush what accumulated.
	if inCode && len(code) > 0 {
		md.CodeBlocks(markdown.SyntaxHighlightNone, strings.Join(code, "\n"))
	}
}

// markdownLink formats one link with its href resolved absolute.
func markdownLink(loc gemini.Location, link gemini.Link) string {
	href := link.Href
	if resolved, err := loc.Resolve(link.Href); err == nil {
		href = resolved.String()
	}
	name := link.Name
	if name == "" {
		name = link.Href
	}
	return fmt.Sprintf("[%s](%s)", name, href)
}
