// Package log builds the application logger on top of log/slog.
//
// Gemini transports user input, including secret replies to status 11
// prompts, in the query component of the requested URL. The handler in
// this package therefore strips query strings from URL-valued attributes
// and masks input-like attributes entirely before records reach the
// underlying text handler. Even verbose logs never contain what the user
// typed at a prompt.
package log
