package team

import (
	"context"
	"strings"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/logger"
	"team-inventory/core/responses"
	"team-inventory/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// Header selects a team for clients that do not keep cookies.
	Header = "X-Team-Number"
	// LocalsID holds the resolved team id.
	LocalsID = "team_id"
	// LocalsNumber holds the resolved team number.
	LocalsNumber = "team_number"
)

// Resolver maps a team number to its id. It returns a NOT_FOUND error for unknown teams.
type Resolver interface {
	ResolveTeam(ctx context.Context, number string) (uint, error)
}

// Config configures the current-team middleware.
type Config struct {
	Resolver   Resolver
	CookieName string
	Logger     *zap.Logger
}

// New returns a middleware that requires a current team on every request it guards.
func New(cfg Config) fiber.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = server.DefaultTeamCookie
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(cfg.Logger, c)

		number := CurrentNumber(c, cfg.CookieName)
		if number == "" {
			return responses.Error(c, l, apperrors.New(apperrors.CodeUnauthorized, "No team selected"))
		}

		id, err := cfg.Resolver.ResolveTeam(c.UserContext(), number)
		if err != nil {
			if apperrors.IsCode(err, apperrors.CodeNotFound) {
				return responses.Error(c, l, apperrors.New(apperrors.CodeNotFound, "Team not found"))
			}
			return responses.Error(c, l, err)
		}

		c.Locals(LocalsID, id)
		c.Locals(LocalsNumber, number)
		return c.Next()
	}
}

// CurrentNumber reads the selected team number from the cookie, falling back to the header.
func CurrentNumber(c *fiber.Ctx, cookieName string) string {
	number := c.Cookies(cookieName)
	if number == "" {
		number = c.Get(Header)
	}
	return strings.ToUpper(strings.TrimSpace(number))
}

// ID returns the team id stored by the middleware.
func ID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalsID).(uint)
	return id, ok
}

// Number returns the team number stored by the middleware.
func Number(c *fiber.Ctx) string {
	number, _ := c.Locals(LocalsNumber).(string)
	return number
}
