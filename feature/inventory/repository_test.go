package inventory

import (
	"context"
	"testing"

	"team-inventory/core/database"
	"team-inventory/feature/inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &models.Part{}))
	return db
}

func seedPart(t *testing.T, db *gorm.DB, teamID uint, number string, stock int, price string) models.Part {
	t.Helper()
	p := models.Part{
		TeamID:      teamID,
		PartNumber:  number,
		Name:        "Part " + number,
		Category:    "Gears",
		InStock:     stock,
		MinRequired: 2,
		UnitPrice:   decimal.RequireFromString(price),
		Supplier:    models.SupplierVexStore,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestRepository_ListIsScopedAndOrdered(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	seedPart(t, db, 1, "B-2", 1, "1.00")
	seedPart(t, db, 1, "A-1", 1, "1.00")
	seedPart(t, db, 2, "C-3", 1, "1.00")

	parts, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "A-1", parts[0].PartNumber)
	assert.Equal(t, "B-2", parts[1].PartNumber)
}

func TestRepository_SaveUpserts(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	part := &models.Part{TeamID: 1, PartNumber: "276-2177", Name: "Motor", Category: "Motors", InStock: 8, UnitPrice: decimal.RequireFromString("39.99"), Supplier: models.SupplierVexStore}
	require.NoError(t, repo.Save(ctx, part))
	firstID := part.ID

	replacement := &models.Part{TeamID: 1, PartNumber: "276-2177", Name: "V5 Motor", Category: "Motors", InStock: 3, UnitPrice: decimal.RequireFromString("41.50"), Supplier: models.SupplierOther}
	require.NoError(t, repo.Save(ctx, replacement))
	assert.Equal(t, firstID, replacement.ID)

	found, err := repo.FindByNumber(ctx, 1, "276-2177")
	require.NoError(t, err)
	assert.Equal(t, "V5 Motor", found.Name)
	assert.Equal(t, 3, found.InStock)
	assert.Equal(t, "41.50", found.UnitPrice.StringFixed(2))

	var count int64
	db.Model(&models.Part{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRepository_UpdateStockAndDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	p := seedPart(t, db, 1, "217-2700", 10, "7.99")

	require.NoError(t, repo.UpdateStock(ctx, 1, "217-2700", 4))
	assert.ErrorIs(t, repo.UpdateStock(ctx, 2, "217-2700", 4), gorm.ErrRecordNotFound)

	require.NoError(t, repo.SetStockByID(ctx, p.ID, -3))
	found, err := repo.FindByNumber(ctx, 1, "217-2700")
	require.NoError(t, err)
	assert.Equal(t, -3, found.InStock)
	assert.ErrorIs(t, repo.SetStockByID(ctx, 9999, 1), gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(ctx, 1, "217-2700"))
	assert.ErrorIs(t, repo.Delete(ctx, 1, "217-2700"), gorm.ErrRecordNotFound)
}

func TestRepository_Snapshot(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	p := seedPart(t, db, 1, "217-2700", 10, "7.99")
	seedPart(t, db, 2, "OTHER", 1, "1.00")

	snap, err := repo.Snapshot(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, snap, 1)

	got, ok := snap.Lookup("217-2700")
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, 10, got.InStock)
	assert.Equal(t, 2, got.MinRequired)
	assert.Equal(t, "7.99", got.UnitPrice.StringFixed(2))

	_, ok = snap.Lookup("OTHER")
	assert.False(t, ok)
}

func TestRepository_WithTx(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	seedPart(t, db, 1, "217-2700", 10, "7.99")

	assert.Same(t, repo, repo.WithTx(nil))

	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.WithTx(tx).UpdateStock(context.Background(), 1, "217-2700", 1)
	})
	require.NoError(t, err)

	found, err := repo.FindByNumber(context.Background(), 1, "217-2700")
	require.NoError(t, err)
	assert.Equal(t, 1, found.InStock)
}
