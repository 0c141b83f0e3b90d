package inventory

import (
	"context"
	"errors"
	"strings"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/reconcile"
	"team-inventory/core/validation"
	"team-inventory/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages a team's parts.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the team's parts ordered by part number.
func (s *Service) List(ctx context.Context, teamID uint) ([]models.Part, error) {
	parts, err := s.repo.List(ctx, teamID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to list inventory")
	}
	return parts, nil
}

// Save validates req and creates or replaces the part it describes.
func (s *Service) Save(ctx context.Context, teamID uint, req SavePartRequest) (*models.Part, error) {
	req.PartNumber = strings.TrimSpace(req.PartNumber)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !models.IsValidCategory(req.Category) {
		return nil, apperrors.New(apperrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"category": "must be one of: " + strings.Join(models.Categories, ", ")})
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.New(apperrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"unit_price": "must be at least 0"})
	}
	supplier, _ := models.ParseSupplier(req.Supplier)

	part := &models.Part{
		TeamID:      teamID,
		PartNumber:  req.PartNumber,
		Name:        req.Name,
		Category:    req.Category,
		InStock:     req.InStock,
		MinRequired: req.MinRequired,
		UnitPrice:   req.UnitPrice.Round(2),
		Supplier:    supplier,
		SupplierURL: req.SupplierURL,
		LastOrdered: req.LastOrdered,
	}
	if err := s.repo.Save(ctx, part); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to save part")
	}
	s.logger.Info("Part saved", zap.Uint("team_id", teamID), zap.String("part_number", part.PartNumber))
	return part, nil
}

// UpdateStock overwrites the stock of an existing part.
func (s *Service) UpdateStock(ctx context.Context, teamID uint, partNumber string, req UpdateStockRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := s.repo.UpdateStock(ctx, teamID, partNumber, *req.InStock); err != nil {
		return mapNotFound(err, "Part not found", "failed to update stock")
	}
	return nil
}

// Delete removes a part.
func (s *Service) Delete(ctx context.Context, teamID uint, partNumber string) error {
	if strings.TrimSpace(partNumber) == "" {
		return apperrors.New(apperrors.CodeValidation, "Part number required")
	}
	if err := s.repo.Delete(ctx, teamID, partNumber); err != nil {
		return mapNotFound(err, "Part not found", "failed to delete part")
	}
	return nil
}

// Snapshot returns the lookup used by reconciliation. tx may be nil.
func (s *Service) Snapshot(ctx context.Context, tx *gorm.DB, teamID uint) (reconcile.PartMap, error) {
	snapshot, err := s.repo.WithTx(tx).Snapshot(ctx, teamID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to load inventory")
	}
	return snapshot, nil
}

func mapNotFound(err error, notFound, otherwise string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.CodeNotFound, notFound)
	}
	return apperrors.Wrap(apperrors.CodeInternal, err, otherwise)
}
