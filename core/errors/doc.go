// Package errors defines the coded error type shared by services and handlers.
//
// Services return *Error values (or wrap them with %w) to say how a failure should
// reach the client: validation problems become 400s, unknown teams, parts and builds
// become 404s, duplicate team numbers become 409s and everything else is a 500.
// Domain outcomes of a BOM run (missing or short parts) are never errors.
package errors
