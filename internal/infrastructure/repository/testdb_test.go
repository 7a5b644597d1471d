package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database migrated with
// the full schema. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Unit{},
		&entity.Product{},
		&entity.Receipt{},
		&entity.ReceiptItem{},
		&entity.SalesReport{},
	))

	return db
}

// createTestProduct inserts a unit and a product priced in cents
func createTestProduct(t *testing.T, db *gorm.DB, name string, priceCents int64) *entity.Product {
	t.Helper()

	unit := &entity.Unit{Name: name + "-unit"}
	require.NoError(t, db.Create(unit).Error)

	product := &entity.Product{
		UnitID:  unit.ID,
		Name:    name,
		Barcode: name + "-barcode",
		Price:   priceCents,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

// currentReport reads the report row directly, tolerating its absence
func currentReport(t *testing.T, db *gorm.DB) entity.SalesReport {
	t.Helper()

	var report entity.SalesReport
	err := db.First(&report, "id = ?", entity.SalesReportID).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return entity.SalesReport{}
	}
	return report
}
