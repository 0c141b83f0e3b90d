package checks

import (
	"testing"

	"team-inventory/core/database"
	bommodels "team-inventory/feature/bom/models"
	invmodels "team-inventory/feature/inventory/models"
	teammodels "team-inventory/feature/team/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, invmodels.Part{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_RejectsNonModels(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := CheckSchema(db, 42)
	assert.Error(t, err)

	type noTable struct{ ID uint }
	_, err = CheckSchema(db, noTable{})
	assert.Error(t, err)
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("build_id", "bigint unsigned", "NO", "MUL", nil, "").
		AddRow("part_number", "varchar(64)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `build_parts`").WillReturnRows(rows)

	report, err := CheckSchema(db, &bommodels.BuildPart{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl, ok := report.Tables["build_parts"]
	require.True(t, ok)
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"name", "position", "quantity"}, tbl.MissingColumns)
	assert.Empty(t, tbl.TypeMismatches)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "").
		AddRow("number", "varchar(16)", "NO", "UNI", nil, "").
		AddRow("name", "varchar(255)", "NO", "", nil, "").
		AddRow("organization", "varchar(255)", "YES", "", nil, "").
		AddRow("budget", "float", "NO", "", "0", "").
		AddRow("spent", "DECIMAL(12,2)", "NO", "", "0", "").
		AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `teams`").WillReturnRows(rows)

	report, err := CheckSchema(db, teammodels.Team{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["teams"]
	assert.Empty(t, tbl.MissingColumns)
	assert.Equal(t, []string{"budget: expected decimal(12,2), got float"}, tbl.TypeMismatches)
}

func TestCheckSchema_InspectionErrorIsReported(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `parts`").WillReturnError(assert.AnError)
	mock.ExpectQuery("SHOW COLUMNS FROM `builds`").WillReturnRows(columnRows())

	report, err := CheckSchema(db, invmodels.Part{}, bommodels.Build{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "parts")
	assert.Equal(t, "Table builds does not exist", report.Errors[1])
}

func TestCheckSchema_MigratedSQLiteMatches(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	models := []any{
		&teammodels.Team{}, &teammodels.Member{},
		&invmodels.Part{},
		&bommodels.Build{}, &bommodels.BuildPart{},
	}
	require.NoError(t, database.Migrate(db, models...))

	report, err := CheckSchema(db, models...)
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report)
	assert.Len(t, report.Tables, 5)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "part_number", parseGormColumn("primaryKey;column:part_number;type:varchar(64)"))
	assert.Equal(t, "decimal(12,2)", parseGormType("column:unit_price;type:decimal(12,2)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
