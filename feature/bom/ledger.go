package bom

import (
	"context"

	"team-inventory/core/reconcile"
	"team-inventory/feature/bom/models"
	"team-inventory/feature/inventory"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SpendIncrementer adds to a team's running spend. tx may be nil.
type SpendIncrementer interface {
	IncrementSpent(ctx context.Context, tx *gorm.DB, teamID uint, amount decimal.Decimal) error
}

// gormLedger persists a reconciliation plan inside one transaction.
type gormLedger struct {
	builds Repository
	parts  inventory.Repository
	spend  SpendIncrementer
	tx     *gorm.DB
}

func newLedger(tx *gorm.DB, builds Repository, parts inventory.Repository, spend SpendIncrementer) *gormLedger {
	return &gormLedger{
		builds: builds.WithTx(tx),
		parts:  parts.WithTx(tx),
		spend:  spend,
		tx:     tx,
	}
}

func (l *gormLedger) SetStock(ctx context.Context, partID uint, newStock int) error {
	return l.parts.SetStockByID(ctx, partID, newStock)
}

func (l *gormLedger) IncrementSpend(ctx context.Context, teamID uint, amount decimal.Decimal) error {
	return l.spend.IncrementSpent(ctx, l.tx, teamID, amount)
}

// IncrementSpendBatch sums the amounts and writes them once.
func (l *gormLedger) IncrementSpendBatch(ctx context.Context, teamID uint, amounts []decimal.Decimal) error {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	if total.IsZero() {
		return nil
	}
	return l.IncrementSpend(ctx, teamID, total)
}

func (l *gormLedger) CreateBuild(ctx context.Context, teamID uint, name string, status reconcile.BuildStatus, totalCost decimal.Decimal) (uint, error) {
	build := &models.Build{
		TeamID:    teamID,
		Name:      name,
		Status:    string(status),
		TotalCost: totalCost,
	}
	if err := l.builds.Create(ctx, build); err != nil {
		return 0, err
	}
	return build.ID, nil
}

func (l *gormLedger) AppendBuildParts(ctx context.Context, buildID uint, parts []reconcile.BuildPart) error {
	return l.builds.AppendParts(ctx, buildID, parts)
}

func (l *gormLedger) FinalizeBuildCost(ctx context.Context, buildID uint, totalCost decimal.Decimal) error {
	return l.builds.FinalizeCost(ctx, buildID, totalCost)
}
