// Package client is the HTTP binding of the file-sharing API.
//
// The Client interface covers the four endpoints the workflow needs:
// Upload, Preview, Download and Health. HTTPClient implements it on top of
// net/http; every request carries a fresh X-Request-ID.
//
// # Errors
//
// All failures are *Error values classified by Kind. The Kind sentinels
// (ErrTransport, ErrServerStatus, ErrEmptyResponse, ErrMalformedResponse,
// ErrApplication, ErrValidation) can be matched with errors.Is, and
// Error() returns the message meant for the user, e.g. "Server error: 500".
//
// Upload checks the answer in a fixed order: transport, status, blank body,
// parse, success flag. Preview is more lenient: a blank body is an empty
// object and only an explicit "success": false is a failure.
package client
