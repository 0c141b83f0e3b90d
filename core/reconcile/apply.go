package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger persists the outcome of a reconciliation.
type Ledger interface {
	SetStock(ctx context.Context, partID uint, newStock int) error
	IncrementSpend(ctx context.Context, teamID uint, amount decimal.Decimal) error
	CreateBuild(ctx context.Context, teamID uint, name string, status BuildStatus, totalCost decimal.Decimal) (uint, error)
	AppendBuildParts(ctx context.Context, buildID uint, parts []BuildPart) error
	FinalizeBuildCost(ctx context.Context, buildID uint, totalCost decimal.Decimal) error
}

// StockBatchSetter is implemented by ledgers that can write many stock levels at once.
type StockBatchSetter interface {
	SetStockBatch(ctx context.Context, changes []StockChange) error
}

// SpendBatcher is implemented by ledgers that can add several amounts in one write.
type SpendBatcher interface {
	IncrementSpendBatch(ctx context.Context, teamID uint, amounts []decimal.Decimal) error
}

// Apply persists plan through ledger and stores the new build id on plan.Report.
// Simulated plans record the build and its parts but never touch stock or spend.
// Apply stops at the first ledger error; callers wanting all-or-nothing behaviour
// run it inside a transaction.
func Apply(ctx context.Context, ledger Ledger, teamID uint, buildName string, plan *Plan) (uint, error) {
	if ledger == nil {
		return 0, errors.New("ledger is required")
	}
	if plan == nil {
		return 0, errors.New("plan is required")
	}

	buildID, err := ledger.CreateBuild(ctx, teamID, buildName, plan.BuildStatus, decimal.Zero)
	if err != nil {
		return 0, fmt.Errorf("failed to create build: %w", err)
	}

	if plan.BuildStatus != BuildSimulated {
		if err := applyStock(ctx, ledger, plan.StockChanges); err != nil {
			return 0, err
		}
		if err := applySpend(ctx, ledger, teamID, plan.SpendIncrements); err != nil {
			return 0, err
		}
	}

	if len(plan.BuildParts) > 0 {
		if err := ledger.AppendBuildParts(ctx, buildID, plan.BuildParts); err != nil {
			return 0, fmt.Errorf("failed to append parts to build %d: %w", buildID, err)
		}
	}

	if err := ledger.FinalizeBuildCost(ctx, buildID, plan.TotalCost); err != nil {
		return 0, fmt.Errorf("failed to finalize cost of build %d: %w", buildID, err)
	}

	plan.Report.BuildID = buildID
	return buildID, nil
}

func applyStock(ctx context.Context, ledger Ledger, changes []StockChange) error {
	if len(changes) == 0 {
		return nil
	}
	if batcher, ok := ledger.(StockBatchSetter); ok {
		if err := batcher.SetStockBatch(ctx, changes); err != nil {
			return fmt.Errorf("failed to batch set stock: %w", err)
		}
		return nil
	}
	for _, change := range changes {
		if err := ledger.SetStock(ctx, change.PartID, change.NewStock); err != nil {
			return fmt.Errorf("failed to set stock of %s: %w", change.PartNumber, err)
		}
	}
	return nil
}

func applySpend(ctx context.Context, ledger Ledger, teamID uint, amounts []decimal.Decimal) error {
	if len(amounts) == 0 {
		return nil
	}
	if batcher, ok := ledger.(SpendBatcher); ok {
		if err := batcher.IncrementSpendBatch(ctx, teamID, amounts); err != nil {
			return fmt.Errorf("failed to batch increment spend: %w", err)
		}
		return nil
	}
	for _, amount := range amounts {
		if err := ledger.IncrementSpend(ctx, teamID, amount); err != nil {
			return fmt.Errorf("failed to increment spend: %w", err)
		}
	}
	return nil
}
