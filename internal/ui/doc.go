// Package ui implements the terminal collaborators of the navigation
// loop: paginated document display through an external pager, visible and
// secret-masked line input, an $EDITOR round-trip for rewriting the
// current location, and the OS-level opener for non-gemini targets.
//
// Nothing here carries protocol semantics. The browser package drives
// these collaborators through small interfaces, and every failure is
// either reported upward or deliberately ignored (the opener is
// fire-and-forget).
package ui
