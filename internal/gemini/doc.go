// Package gemini implements the wire-level pieces of the Gemini protocol
// that do not touch the network: locations, status codes, response parsing,
// and gemtext link extraction.
//
// The package is purely functional. A raw response string goes in, a
// structured Response comes out; nothing here performs I/O or keeps state.
// Session state (history, redirects) lives in the browser package, and the
// actual TLS round-trip lives in the transport package.
//
// # Response format
//
// A Gemini response is a single header line followed by an optional body:
//
//	<status><SPACE><meta>\r\n
//	<body...>
//
// The status is a two-digit number; its tens digit selects the StatusClass
// that drives navigation. The meta string is overloaded: it carries the
// redirect target for 3x responses, the input prompt for 1x responses, the
// media type for 2x responses, and a human-readable message otherwise.
//
// # Links
//
// Body lines starting with "=>" (after leading whitespace) are link lines:
//
//	=> /docs/faq.gmi Frequently asked questions
//
// ExtractLinks collects them in document order. ParseResponse additionally
// annotates each valid link line with its zero-based index, "(0) => ...",
// so a display layer can offer numbered selection.
package gemini
