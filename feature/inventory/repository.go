package inventory

import (
	"context"
	"errors"

	"team-inventory/core/reconcile"
	"team-inventory/feature/inventory/models"

	"gorm.io/gorm"
)

// Repository handles inventory persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, teamID uint) ([]models.Part, error)
	FindByNumber(ctx context.Context, teamID uint, partNumber string) (*models.Part, error)
	Save(ctx context.Context, part *models.Part) error
	UpdateStock(ctx context.Context, teamID uint, partNumber string, inStock int) error
	SetStockByID(ctx context.Context, partID uint, inStock int) error
	Delete(ctx context.Context, teamID uint, partNumber string) error
	Snapshot(ctx context.Context, teamID uint) (reconcile.PartMap, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context, teamID uint) ([]models.Part, error) {
	var parts []models.Part
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("part_number ASC").
		Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *repository) FindByNumber(ctx context.Context, teamID uint, partNumber string) (*models.Part, error) {
	var part models.Part
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND part_number = ?", teamID, partNumber).
		First(&part).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// Save creates the part or replaces the existing row with the same team and part number.
func (r *repository) Save(ctx context.Context, part *models.Part) error {
	existing, err := r.FindByNumber(ctx, part.TeamID, part.PartNumber)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(part).Error
	case err != nil:
		return err
	}
	part.ID = existing.ID
	part.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(part).Error
}

func (r *repository) UpdateStock(ctx context.Context, teamID uint, partNumber string, inStock int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Part{}).
		Where("team_id = ? AND part_number = ?", teamID, partNumber).
		Update("in_stock", inStock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SetStockByID(ctx context.Context, partID uint, inStock int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Part{}).
		Where("id = ?", partID).
		Update("in_stock", inStock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, teamID uint, partNumber string) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND part_number = ?", teamID, partNumber).
		Delete(&models.Part{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Snapshot loads the team's parts keyed by part number.
func (r *repository) Snapshot(ctx context.Context, teamID uint) (reconcile.PartMap, error) {
	parts, err := r.List(ctx, teamID)
	if err != nil {
		return nil, err
	}
	snapshot := make(reconcile.PartMap, len(parts))
	for _, p := range parts {
		snapshot[p.PartNumber] = reconcile.Part{
			ID:          p.ID,
			PartNumber:  p.PartNumber,
			Name:        p.Name,
			InStock:     p.InStock,
			MinRequired: p.MinRequired,
			UnitPrice:   p.UnitPrice,
		}
	}
	return snapshot, nil
}
