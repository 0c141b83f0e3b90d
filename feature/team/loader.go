package team

import (
	"team-inventory/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	guard   fiber.Handler
}

// NewFeature creates the team feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, cfg server.Config) *Feature {
	svc := NewService(NewRepository(db), logger)
	return &Feature{service: svc, handler: NewHandler(svc, cfg)}
}

// Service exposes the team service, which also resolves the current team.
func (f *Feature) Service() *Service {
	return f.service
}

// SetGuard sets the middleware protecting the current-team routes.
func (f *Feature) SetGuard(guard fiber.Handler) {
	f.guard = guard
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "team"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	guard := f.guard
	if guard == nil {
		guard = func(c *fiber.Ctx) error { return c.Next() }
	}
	f.handler.RegisterRoutes(app, guard)
	return nil
}
