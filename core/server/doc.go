// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and defaults for server settings such as the
// listening port, the API key and the cookie that identifies the current team.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the team middleware and handlers to read the team cookie name.
package server
