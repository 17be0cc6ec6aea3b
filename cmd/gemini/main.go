// Package main provides the entry point for the gemini CLI.
//
// gemini is a terminal browser for the Gemini protocol. It fetches a
// capsule page, shows it through a pager, and lets the user follow
// numbered links, answer server input prompts, and walk back through
// the visit history.
//
// Usage:
//
//	gemini gemini://geminiprotocol.net/
//	gemini fetch gemini://example.org/page.gmi
//
// See --help for all available options.
package main

// main is the entry point for the gemini browser.
func main() {
	Execute()
}
