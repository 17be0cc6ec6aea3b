// Package transport performs the Gemini network round-trip: open a TLS
// connection to the target host (optionally through a SOCKS5 proxy),
// send the single request line, and read the stream to completion.
//
// Gemini has no length framing; end-of-stream is end-of-response, so a
// fetch is one connection, one write, one drain. Certificate verification
// is disabled because the Gemini ecosystem runs on self-signed
// certificates; the reference behavior accepts any certificate.
//
// The package knows nothing about response semantics. It hands the raw
// text to the caller, who parses it with the gemini package.
package transport
