package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sskhi1/pos-system/internal/application/service"
	"github.com/sskhi1/pos-system/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get returns the running sales report
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reportService.GetSalesReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", gin.H{"sales": report})
}
