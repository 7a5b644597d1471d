package service

import (
	"context"

	"github.com/sskhi1/pos-system/internal/domain/entity"
	"github.com/sskhi1/pos-system/internal/domain/repository"
)

// ReportService exposes the running sales report
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// GetSalesReport returns the closed-receipt count and cumulative revenue
func (s *ReportService) GetSalesReport(ctx context.Context) (*entity.SalesReport, error) {
	return s.reportRepo.Get(ctx)
}
