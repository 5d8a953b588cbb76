// Package shared holds the HTTP plumbing used by both the handlers and the
// middleware: JSON request decoding and validation, JSON responses, and the
// per-request trace ID.
package shared
