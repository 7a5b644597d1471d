package repository

import (
	"context"

	"github.com/sskhi1/pos-system/internal/domain/entity"
	domainRepo "github.com/sskhi1/pos-system/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new sales report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// Get returns the singleton report row, inserting it with zero counters
// on the first read of a fresh store.
func (r *reportRepository) Get(ctx context.Context) (*entity.SalesReport, error) {
	report := entity.SalesReport{ID: entity.SalesReportID}
	err := r.db.WithContext(ctx).
		Where(entity.SalesReport{ID: entity.SalesReportID}).
		FirstOrCreate(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
