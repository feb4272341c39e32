package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockDeliveryStore struct {
	mock.Mock
}

func (m *mockDeliveryStore) List(ctx context.Context, opts db.ListOptions) ([]models.Delivery, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]models.Delivery), args.Get(1).(int64), args.Error(2)
}

func (m *mockDeliveryStore) GetByID(ctx context.Context, id string) (*models.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Delivery), args.Error(1)
}

func (m *mockDeliveryStore) Insert(ctx context.Context, delivery *models.Delivery) error {
	return m.Called(ctx, delivery).Error(0)
}

func (m *mockDeliveryStore) Replace(ctx context.Context, id string, delivery *models.Delivery) error {
	return m.Called(ctx, id, delivery).Error(0)
}

func (m *mockDeliveryStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockVehicleStore struct {
	mock.Mock
}

func (m *mockVehicleStore) List(ctx context.Context, opts db.ListOptions) ([]models.Vehicle, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]models.Vehicle), args.Get(1).(int64), args.Error(2)
}

func (m *mockVehicleStore) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) Insert(ctx context.Context, vehicle *models.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleStore) Replace(ctx context.Context, id string, vehicle *models.Vehicle) error {
	return m.Called(ctx, id, vehicle).Error(0)
}

func (m *mockVehicleStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSequenceStore struct {
	mock.Mock
}

func (m *mockSequenceStore) Next(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

type mockReportStore struct {
	mock.Mock
}

func (m *mockReportStore) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *mockReportStore) DeliveryPerformance(ctx context.Context, window db.DateWindow) (*models.DeliveryPerformanceReport, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliveryPerformanceReport), args.Error(1)
}

func (m *mockReportStore) VehicleUtilization(ctx context.Context, window db.DateWindow) ([]models.VehicleUtilizationRow, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VehicleUtilizationRow), args.Error(1)
}

func (m *mockReportStore) ExpenseAnalysis(ctx context.Context, window db.DateWindow) (*models.ExpenseAnalysisReport, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExpenseAnalysisReport), args.Error(1)
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
