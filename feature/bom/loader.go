package bom

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	guard   fiber.Handler
}

// NewFeature creates the BOM feature. guard resolves the current team.
func NewFeature(deps Deps, guard fiber.Handler) *Feature {
	svc := NewService(deps)
	return &Feature{service: svc, handler: NewHandler(svc), guard: guard}
}

// Service exposes the BOM service, used by the command line.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bom"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.guard)
	return nil
}
