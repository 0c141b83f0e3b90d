package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// TeamCookie is the cookie carrying the current team number.
	TeamCookie string `mapstructure:"team_cookie" default:"team_number"`
	// SecureCookies marks the team cookie Secure (HTTPS only).
	SecureCookies bool `mapstructure:"secure_cookies" default:"false"`
}

// TeamCookieMaxAge is how long a team login is remembered.
const TeamCookieMaxAge = 365 * 24 * time.Hour

// DefaultTeamCookie is used when the configured cookie name is empty.
const DefaultTeamCookie = "team_number"

// CookieName returns the configured team cookie name, falling back to the default.
func (c Config) CookieName() string {
	if c.TeamCookie == "" {
		return DefaultTeamCookie
	}
	return c.TeamCookie
}
