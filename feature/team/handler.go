package team

import (
	"time"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/logger"
	teammw "team-inventory/core/middleware/team"
	"team-inventory/core/responses"
	"team-inventory/core/server"
	"team-inventory/core/validation"
	"team-inventory/feature/team/models"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for teams.
type Handler struct {
	service *Service
	cookies server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cookies server.Config) *Handler {
	return &Handler{service: service, cookies: cookies}
}

// RegisterRoutes registers the team routes. guard protects the current-team routes.
func (h *Handler) RegisterRoutes(app fiber.Router, guard fiber.Handler) {
	group := app.Group("/teams")
	group.Get("/lookup", h.HandleLookup)
	group.Post("/login", h.HandleLogin)
	group.Post("/logout", h.HandleLogout)
	group.Post("/register", h.HandleRegister)

	current := group.Group("/current", guard)
	current.Get("/", h.HandleCurrent)
	current.Put("/", h.HandleUpdate)
	current.Get("/finances", h.HandleFinances)
	current.Post("/members", h.HandleAddMember)
	current.Delete("/members/:id", h.HandleRemoveMember)
}

func (h *Handler) setTeamCookie(c *fiber.Ctx, number string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookies.CookieName(),
		Value:    number,
		Path:     "/",
		MaxAge:   int(server.TeamCookieMaxAge / time.Second),
		HTTPOnly: true,
		Secure:   h.cookies.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// HandleLookup reports whether a team number is registered.
// @Summary Look Up Team
// @Tags teams
// @Produce json
// @Param number query string true "Team number"
// @Success 200 {object} LookupResponse "Lookup result"
// @Router /teams/lookup [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	number := c.Query("number")
	if number == "" {
		return responses.Error(c, l, apperrors.New(apperrors.CodeValidation, "Team number required"))
	}
	res, err := h.service.Lookup(c.UserContext(), number)
	if err != nil {
		return responses.Error(c, l, err)
	}
	return c.JSON(res)
}

// HandleLogin selects the current team by setting the team cookie.
// @Summary Select Team
// @Tags teams
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Team number"
// @Success 200 {object} map[string]interface{} "Logged in"
// @Router /teams/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, l, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return responses.Error(c, l, err)
	}
	h.setTeamCookie(c, models.NormalizeNumber(req.TeamNumber))
	return c.JSON(fiber.Map{"success": true})
}

// HandleLogout clears the team cookie.
// @Summary Clear Team
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /teams/logout [post]
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	c.ClearCookie(h.cookies.CookieName())
	return c.JSON(fiber.Map{"success": true})
}

// HandleRegister creates a team and selects it.
// @Summary Register Team
// @Tags teams
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Team"
// @Success 200 {object} map[string]interface{} "Registered"
// @Failure 409 {object} map[string]interface{} "Team already exists"
// @Router /teams/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, l, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body"))
	}
	team, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return responses.Error(c, l, err)
	}
	h.setTeamCookie(c, team.Number)
	return c.JSON(fiber.Map{"success": true, "team": team})
}

// HandleCurrent returns the current team with its members.
// @Summary Current Team
// @Tags teams
// @Produce json
// @Success 200 {object} models.Team "Team"
// @Failure 401 {object} map[string]interface{} "No team selected"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/current [get]
func (h *Handler) HandleCurrent(c *fiber.Ctx) error {
	teamID, _ := teammw.ID(c)
	team, err := h.service.Get(c.UserContext(), teamID)
	if err != nil {
		return responses.Error(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(team)
}

// HandleUpdate edits the current team.
// @Summary Update Team
// @Tags teams
// @Accept json
// @Produce json
// @Param body body UpdateTeamRequest true "Changes"
// @Success 200 {object} map[string]interface{} "Updated"
// @Router /teams/current [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, l, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body"))
	}
	teamID, _ := teammw.ID(c)
	team, err := h.service.Update(c.UserContext(), teamID, req)
	if err != nil {
		return responses.Error(c, l, err)
	}
	return c.JSON(fiber.Map{"success": true, "team": team})
}

// HandleFinances returns the current team's financial stats.
// @Summary Team Finances
// @Tags teams
// @Produce json
// @Success 200 {object} FinancialStats "Finances"
// @Router /teams/current/finances [get]
func (h *Handler) HandleFinances(c *fiber.Ctx) error {
	teamID, _ := teammw.ID(c)
	stats, err := h.service.Finances(c.UserContext(), teamID)
	if err != nil {
		return responses.Error(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(stats)
}

// HandleAddMember adds a member to the current team.
// @Summary Add Member
// @Tags teams
// @Accept json
// @Produce json
// @Param body body AddMemberRequest true "Member"
// @Success 200 {object} map[string]interface{} "Added"
// @Router /teams/current/members [post]
func (h *Handler) HandleAddMember(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, l, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body"))
	}
	teamID, _ := teammw.ID(c)
	member, err := h.service.AddMember(c.UserContext(), teamID, req)
	if err != nil {
		return responses.Error(c, l, err)
	}
	return c.JSON(fiber.Map{"success": true, "member": member})
}

// HandleRemoveMember removes a member from the current team.
// @Summary Remove Member
// @Tags teams
// @Produce json
// @Param id path string true "Member id"
// @Success 200 {object} map[string]interface{} "Removed"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /teams/current/members/{id} [delete]
func (h *Handler) HandleRemoveMember(c *fiber.Ctx) error {
	teamID, _ := teammw.ID(c)
	if err := h.service.RemoveMember(c.UserContext(), teamID, c.Params("id")); err != nil {
		return responses.Error(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(fiber.Map{"success": true})
}
