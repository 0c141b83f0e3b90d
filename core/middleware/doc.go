// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation through the X-API-Key header.
//   - RayID: a unique request id injected into locals and the X-Ray-ID response header.
//   - Team: resolves the current team from the team cookie or X-Team-Number header
//     and rejects requests without one.
package middleware
