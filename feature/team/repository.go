package team

import (
	"context"
	"time"

	bommodels "team-inventory/feature/bom/models"
	invmodels "team-inventory/feature/inventory/models"
	"team-inventory/feature/team/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository handles team persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByNumber(ctx context.Context, number string) (*models.Team, error)
	FindByID(ctx context.Context, id uint) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	IncrementSpent(ctx context.Context, teamID uint, amount decimal.Decimal) error
	AddMember(ctx context.Context, member *models.Member) error
	RemoveMember(ctx context.Context, teamID uint, memberID string) error
	ListParts(ctx context.Context, teamID uint) ([]invmodels.Part, error)
	ListProcessedBuilds(ctx context.Context, teamID uint) ([]bommodels.Build, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a team repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) withMembers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("joined_at ASC")
	})
}

func (r *repository) FindByNumber(ctx context.Context, number string) (*models.Team, error) {
	var team models.Team
	if err := r.withMembers(ctx).Where("number = ?", number).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	if err := r.withMembers(ctx).First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Create inserts the team together with its members.
func (r *repository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// Update writes the editable team fields.
func (r *repository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).
		Model(&models.Team{ID: team.ID}).
		Select("name", "organization", "budget").
		Updates(team).Error
}

func (r *repository) IncrementSpent(ctx context.Context, teamID uint, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", teamID).
		Update("spent", gorm.Expr("spent + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) AddMember(ctx context.Context, member *models.Member) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *repository) RemoveMember(ctx context.Context, teamID uint, memberID string) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, memberID).
		Delete(&models.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListParts(ctx context.Context, teamID uint) ([]invmodels.Part, error) {
	var parts []invmodels.Part
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *repository) ListProcessedBuilds(ctx context.Context, teamID uint) ([]bommodels.Build, error) {
	var builds []bommodels.Build
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, bommodels.StatusProcessed).
		Order("created_at ASC").
		Find(&builds).Error; err != nil {
		return nil, err
	}
	return builds, nil
}
