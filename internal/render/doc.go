// Package render turns a fetched document into displayable or exportable
// text.
//
// DecodeBody applies the charset parameter of a success response's meta
// field (e.g. "text/gemini; charset=iso-8859-1") so the terminal always
// sees UTF-8. WriteMarkdown converts a gemtext document into GitHub
// Flavored Markdown: headings map across directly, link lines become
// bulleted links resolved against the document location, and preformat
// fences become code blocks.
package render
