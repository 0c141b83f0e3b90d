package bom

import (
	"context"
	"time"

	"team-inventory/core/reconcile"
	"team-inventory/feature/bom/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BuildRow is a build without its parts, as listed in the history.
type BuildRow struct {
	ID        uint
	Name      string
	Status    string
	TotalCost decimal.Decimal
	CreatedAt time.Time
	PartCount int
}

// Repository handles persistence of builds.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, build *models.Build) error
	AppendParts(ctx context.Context, buildID uint, parts []reconcile.BuildPart) error
	FinalizeCost(ctx context.Context, buildID uint, totalCost decimal.Decimal) error
	List(ctx context.Context, teamID uint) ([]BuildRow, error)
	Find(ctx context.Context, teamID, buildID uint) (*models.Build, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, build *models.Build) error {
	return r.db.WithContext(ctx).Omit("Parts").Create(build).Error
}

func (r *repository) AppendParts(ctx context.Context, buildID uint, parts []reconcile.BuildPart) error {
	if len(parts) == 0 {
		return nil
	}
	var offset int64
	if err := r.db.WithContext(ctx).Model(&models.BuildPart{}).Where("build_id = ?", buildID).Count(&offset).Error; err != nil {
		return err
	}
	rows := make([]models.BuildPart, len(parts))
	for i, p := range parts {
		rows[i] = models.BuildPart{
			BuildID:    buildID,
			Position:   int(offset) + i,
			PartNumber: p.PartNumber,
			Quantity:   p.Quantity,
			Name:       p.Name,
		}
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 200).Error
}

func (r *repository) FinalizeCost(ctx context.Context, buildID uint, totalCost decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&models.Build{}).
		Where("id = ?", buildID).
		Update("total_cost", totalCost)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports an unchanged row as unaffected.
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Build{}).Where("id = ?", buildID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns the team's builds newest first.
func (r *repository) List(ctx context.Context, teamID uint) ([]BuildRow, error) {
	var rows []BuildRow
	err := r.db.WithContext(ctx).
		Model(&models.Build{}).
		Select("builds.id, builds.name, builds.status, builds.total_cost, builds.created_at, " +
			"(SELECT COUNT(*) FROM build_parts WHERE build_parts.build_id = builds.id) AS part_count").
		Where("builds.team_id = ?", teamID).
		Order("builds.created_at DESC, builds.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Find(ctx context.Context, teamID, buildID uint) (*models.Build, error) {
	var build models.Build
	err := r.db.WithContext(ctx).
		Preload("Parts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND team_id = ?", buildID, teamID).
		First(&build).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}
