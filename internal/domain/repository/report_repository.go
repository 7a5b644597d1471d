package repository

import (
	"context"

	"github.com/sskhi1/pos-system/internal/domain/entity"
)

// ReportRepository exposes the singleton sales report row.
type ReportRepository interface {
	// Get returns the current counters, persisting a zero row on first read.
	Get(ctx context.Context) (*entity.SalesReport, error)
}
