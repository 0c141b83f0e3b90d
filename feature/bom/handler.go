package bom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/logger"
	"team-inventory/core/middleware/team"
	"team-inventory/core/responses"
	"team-inventory/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for BOM uploads and builds.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the BOM routes behind guard.
func (h *Handler) RegisterRoutes(app fiber.Router, guard fiber.Handler) {
	app.Post("/bom/upload", guard, h.HandleUpload)

	builds := app.Group("/builds", guard)
	builds.Get("/", h.HandleListBuilds)
	builds.Get("/:id", h.HandleGetBuild)
	builds.Get("/:id/bom", h.HandleDownloadBOM)
}

// HandleUpload reconciles a BOM against the current team's inventory.
// @Summary Upload BOM
// @Description Accepts a CSV file (multipart field "file") or a JSON parts list and returns the reconciliation report.
// @Tags bom
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "BOM CSV"
// @Param build_name formData string false "Build name"
// @Param simulation formData bool false "Dry run"
// @Param body body UploadJSONRequest false "Parts list"
// @Success 200 {object} reconcile.Report "Report"
// @Failure 400 {object} map[string]interface{} "Invalid BOM"
// @Failure 401 {object} map[string]interface{} "No team selected"
// @Router /bom/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req UploadRequest
	var err error
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req, err = readMultipart(c)
	} else {
		req, err = readJSON(c)
	}
	if err != nil {
		return responses.Error(c, l, err)
	}

	teamID, _ := team.ID(c)
	report, err := h.service.Upload(c.UserContext(), teamID, team.Number(c), req)
	if err != nil {
		return responses.Error(c, l, err)
	}
	l.Debug("BOM upload answered", zap.Uint("buildId", report.BuildID))
	return c.JSON(report)
}

func readMultipart(c *fiber.Ctx) (UploadRequest, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return UploadRequest{}, apperrors.Wrap(apperrors.CodeValidation, err, "BOM file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return UploadRequest{}, apperrors.Wrap(apperrors.CodeValidation, err, "failed to open BOM file")
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return UploadRequest{}, apperrors.Wrap(apperrors.CodeValidation, err, "failed to read BOM file")
	}
	lines, err := ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return UploadRequest{}, err
	}
	return UploadRequest{
		BuildName: c.FormValue("build_name"),
		Simulate:  utils.ToBool(c.FormValue("simulation")),
		Lines:     lines,
		RawCSV:    raw,
	}, nil
}

func readJSON(c *fiber.Ctx) (UploadRequest, error) {
	var body UploadJSONRequest
	if err := c.BodyParser(&body); err != nil {
		return UploadRequest{}, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body")
	}
	return UploadRequest{
		BuildName: body.BuildName,
		Simulate:  body.Simulation,
		Lines:     body.PartsList,
	}, nil
}

// HandleListBuilds returns the build history of the current team.
// @Summary List Builds
// @Tags bom
// @Produce json
// @Success 200 {array} BuildSummary "Builds, newest first"
// @Router /builds [get]
func (h *Handler) HandleListBuilds(c *fiber.Ctx) error {
	teamID, _ := team.ID(c)
	builds, err := h.service.ListBuilds(c.UserContext(), teamID)
	if err != nil {
		return responses.Error(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(builds)
}

func buildID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.New(apperrors.CodeValidation, "Invalid build id")
	}
	return uint(id), nil
}

// HandleGetBuild returns one build.
// @Summary Get Build
// @Tags bom
// @Produce json
// @Param id path int true "Build ID"
// @Success 200 {object} BuildDetail "Build"
// @Failure 404 {object} map[string]interface{} "Build not found"
// @Router /builds/{id} [get]
func (h *Handler) HandleGetBuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id, err := buildID(c)
	if err != nil {
		return responses.Error(c, l, err)
	}

	teamID, _ := team.ID(c)
	build, err := h.service.GetBuild(c.UserContext(), teamID, id)
	if err != nil {
		return responses.Error(c, l, err)
	}
	return c.JSON(build)
}

// HandleDownloadBOM streams the archived BOM of one build.
// @Summary Download Build BOM
// @Tags bom
// @Produce text/csv
// @Param id path int true "Build ID"
// @Success 200 {string} string "BOM CSV"
// @Failure 404 {object} map[string]interface{} "Build or archive not found"
// @Router /builds/{id}/bom [get]
func (h *Handler) HandleDownloadBOM(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id, err := buildID(c)
	if err != nil {
		return responses.Error(c, l, err)
	}

	teamID, _ := team.ID(c)
	body, err := h.service.BuildBOM(c.UserContext(), teamID, team.Number(c), id)
	if err != nil {
		return responses.Error(c, l, err)
	}
	c.Attachment(fmt.Sprintf("build-%d.csv", id))
	return c.Send(body)
}
