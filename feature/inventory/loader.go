package inventory

import (
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

// NewFeature creates the inventory feature. guard resolves the current team.
func NewFeature(db *gorm.DB, logger *zap.Logger, guard fiber.Handler) *Feature {
	svc := NewService(NewRepository(db), logger)
	return &Feature{service: svc, handler: NewHandler(svc), guard: guard}
}

// Service exposes the inventory service to other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.guard)
	return nil
}
