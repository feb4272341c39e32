package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
)

// ReportsHandler serves the aggregated report views.
type ReportsHandler struct {
	Store db.ReportStore
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(store db.ReportStore) *ReportsHandler {
	return &ReportsHandler{Store: store}
}

// Dashboard returns the fleet-wide headline counters.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	stats, err := h.Store.Dashboard(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Report", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeliveryPerformance returns delivery counts per status plus the ranked
// driver leaderboard, optionally windowed by startDate/endDate.
func (h *ReportsHandler) DeliveryPerformance(c *gin.Context) {
	report, err := h.Store.DeliveryPerformance(c.Request.Context(), dateWindow(c))
	if err != nil {
		respondStoreError(c, err, "Report", "")
		return
	}
	c.JSON(http.StatusOK, report)
}

// VehicleUtilization returns delivery counts and mileage totals per vehicle.
func (h *ReportsHandler) VehicleUtilization(c *gin.Context) {
	report, err := h.Store.VehicleUtilization(c.Request.Context(), dateWindow(c))
	if err != nil {
		respondStoreError(c, err, "Report", "")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExpenseAnalysis returns expense totals grouped by category, type, and
// month.
func (h *ReportsHandler) ExpenseAnalysis(c *gin.Context) {
	report, err := h.Store.ExpenseAnalysis(c.Request.Context(), dateWindow(c))
	if err != nil {
		respondStoreError(c, err, "Report", "")
		return
	}
	c.JSON(http.StatusOK, report)
}
