package integrity

import (
	"context"

	"team-inventory/core/storage"
	"team-inventory/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	models []any
}

// NewService creates a new integrity service. models are the tables the schema check covers.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, models ...any) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		models: models,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the database against the registered models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	db := s.db
	if db != nil {
		db = db.WithContext(ctx)
	}
	return checks.CheckSchema(db, s.models...)
}
