// Package browser drives Gemini navigation: it owns the session state
// (current location, visited history, redirect counter, last-known-good
// location), resolves link strings against the current location, and runs
// the per-fetch state machine that routes on the response status class.
//
// The package performs no I/O of its own. The network round-trip, the
// input prompts, and the OS-level opener are injected behind the Fetcher,
// Prompter, and Opener interfaces, so the whole state machine is testable
// with in-memory fakes.
//
// One navigation step is one call to Session.Step: append the target to
// history, fetch and parse, then route. The caller loops on the returned
// Outcome: OutcomeNext feeds the next location straight back into Step
// (input replies, redirects), OutcomeDisplay hands the document to the
// caller for rendering and link selection, and OutcomeQuit ends the loop.
// Exactly one request is in flight at any time; all session mutation
// happens on the calling goroutine.
package browser
