package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

func reportsTestRouter(store db.ReportStore) *gin.Engine {
	h := NewReportsHandler(store)
	r := gin.New()
	r.GET("/api/reports/dashboard", h.Dashboard)
	r.GET("/api/reports/delivery-performance", h.DeliveryPerformance)
	r.GET("/api/reports/vehicle-utilization", h.VehicleUtilization)
	r.GET("/api/reports/expense-analysis", h.ExpenseAnalysis)
	return r
}

func TestDashboardZeroExpensesMonth(t *testing.T) {
	store := new(mockReportStore)
	store.On("Dashboard", mock.Anything).Return(&models.DashboardStats{
		Deliveries: models.DeliveryCounts{Total: 12, Active: 3, CompletedThisMonth: 4},
		Vehicles:   models.VehicleCounts{Total: 5, Available: 2, InMaintenance: 1},
		Drivers:    models.DriverCounts{Total: 6, OnDuty: 2},
		Expenses:   models.ExpenseCounts{MonthlyTotal: 0, ByType: []models.ExpenseTypeTotal{}},
	}, nil)

	router := reportsTestRouter(store)
	w := performRequest(t, router, http.MethodGet, "/api/reports/dashboard", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	expenses := body["expenses"].(map[string]any)
	assert.Equal(t, float64(0), expenses["monthlyTotal"])
	assert.Empty(t, expenses["byType"])
}

func TestDeliveryPerformanceRankingOrder(t *testing.T) {
	driverA := primitive.NewObjectID()
	driverB := primitive.NewObjectID()

	store := new(mockReportStore)
	store.On("DeliveryPerformance", mock.Anything, mock.Anything).Return(&models.DeliveryPerformanceReport{
		DeliveryStats: []models.DeliveryStatusStat{
			{Status: models.DeliveryCompleted, Count: 4, TotalAmount: 400},
		},
		DriverPerformance: []models.DriverPerformanceRow{
			{DriverID: driverA, DriverName: "Ana Silva", TotalDeliveries: 3, TotalRevenue: 300},
			{DriverID: driverB, DriverName: "Ben Okafor", TotalDeliveries: 1, TotalRevenue: 100},
		},
	}, nil)

	router := reportsTestRouter(store)
	w := performRequest(t, router, http.MethodGet, "/api/reports/delivery-performance", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	ranking := body["driverPerformance"].([]any)
	require.Len(t, ranking, 2)
	first := ranking[0].(map[string]any)
	assert.Equal(t, "Ana Silva", first["driverName"])
	assert.Equal(t, float64(3), first["totalDeliveries"])
}

func TestDeliveryPerformanceWindowParsing(t *testing.T) {
	store := new(mockReportStore)
	store.On("DeliveryPerformance", mock.Anything, mock.MatchedBy(func(w db.DateWindow) bool {
		return w.Active() &&
			w.Start.Format("2006-01-02") == "2024-01-01" &&
			w.End.Format("2006-01-02") == "2024-01-31"
	})).Return(&models.DeliveryPerformanceReport{}, nil)

	router := reportsTestRouter(store)
	w := performRequest(t, router, http.MethodGet,
		"/api/reports/delivery-performance?startDate=2024-01-01&endDate=2024-01-31", nil)

	require.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

func TestVehicleUtilizationEmptyFleet(t *testing.T) {
	store := new(mockReportStore)
	store.On("VehicleUtilization", mock.Anything, mock.Anything).
		Return([]models.VehicleUtilizationRow{}, nil)

	router := reportsTestRouter(store)
	w := performRequest(t, router, http.MethodGet, "/api/reports/vehicle-utilization", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestExpenseAnalysisServerError(t *testing.T) {
	store := new(mockReportStore)
	store.On("ExpenseAnalysis", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	router := reportsTestRouter(store)
	w := performRequest(t, router, http.MethodGet, "/api/reports/expense-analysis", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", decodeBody(t, w)["message"])
}
