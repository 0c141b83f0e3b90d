package inventory

import (
	"context"
	"testing"

	apperrors "team-inventory/core/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validRequest() SavePartRequest {
	return SavePartRequest{
		PartNumber:  " 217-2700 ",
		Name:        "VEX 84 Tooth Gear",
		Category:    "Gears",
		InStock:     10,
		MinRequired: 2,
		UnitPrice:   decimal.RequireFromString("7.99"),
		SupplierURL: "https://www.vexrobotics.com/217-2700.html",
	}
}

func TestService_Save(t *testing.T) {
	svc := NewService(NewRepository(setupDB(t)), zap.NewNop())
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		part, err := svc.Save(ctx, 1, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "217-2700", part.PartNumber)
		assert.Equal(t, "other", string(part.Supplier))
	})

	t.Run("Missing Name", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		_, err := svc.Save(ctx, 1, req)
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		assert.Equal(t, map[string]string{"name": "is required"}, apperrors.As(err).Details())
	})

	t.Run("Unknown Category", func(t *testing.T) {
		req := validRequest()
		req.Category = "Snacks"
		_, err := svc.Save(ctx, 1, req)
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		details := apperrors.As(err).Details().(map[string]string)
		assert.Contains(t, details["category"], "Chain & Sprockets")
	})

	t.Run("Unknown Supplier", func(t *testing.T) {
		req := validRequest()
		req.Supplier = "amazon"
		_, err := svc.Save(ctx, 1, req)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	})

	t.Run("Negative Price", func(t *testing.T) {
		req := validRequest()
		req.UnitPrice = decimal.NewFromInt(-1)
		_, err := svc.Save(ctx, 1, req)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	})
}

func TestService_UpdateStockAndDelete(t *testing.T) {
	svc := NewService(NewRepository(setupDB(t)), zap.NewNop())
	ctx := context.Background()
	_, err := svc.Save(ctx, 1, validRequest())
	require.NoError(t, err)

	five := 5
	require.NoError(t, svc.UpdateStock(ctx, 1, "217-2700", UpdateStockRequest{InStock: &five}))

	err = svc.UpdateStock(ctx, 1, "NOPE", UpdateStockRequest{InStock: &five})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.Equal(t, "Part not found", apperrors.As(err).Message())

	err = svc.UpdateStock(ctx, 1, "217-2700", UpdateStockRequest{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	snap, err := svc.Snapshot(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, snap["217-2700"].InStock)

	require.NoError(t, svc.Delete(ctx, 1, "217-2700"))
	assert.True(t, apperrors.IsCode(svc.Delete(ctx, 1, "217-2700"), apperrors.CodeNotFound))
	assert.True(t, apperrors.IsCode(svc.Delete(ctx, 1, " "), apperrors.CodeValidation))
}
