// Package common contains shared constants and sentinel errors used across
// filedrop components.
package common

// MaxUploadSize is the advisory client-side upload limit (100 MiB).
const MaxUploadSize int64 = 100 * 1024 * 1024

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"

// DefaultDownloadName is used when the server does not suggest a filename.
const DefaultDownloadName = "download"
