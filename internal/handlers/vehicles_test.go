package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

func vehicleTestRouter(store db.VehicleStore, sequences db.SequenceStore) *gin.Engine {
	h := NewVehicleHandler(store, sequences)
	r := gin.New()
	r.GET("/api/vehicles", h.List)
	r.POST("/api/vehicles", h.Create)
	return r
}

func validVehiclePayload() map[string]any {
	return map[string]any{
		"make":         "Ford",
		"model":        "Transit",
		"year":         2022,
		"licensePlate": "FLT-204",
		"vin":          "1FTBW2CM5NKA55837",
		"type":         "van",
		"fuelType":     "diesel",
	}
}

func TestVehicleCreateDuplicateVIN(t *testing.T) {
	store := new(mockVehicleStore)
	sequences := new(mockSequenceStore)
	sequences.On("Next", mock.Anything, db.PrefixVehicle).Return("V-1001", nil)
	store.On("Insert", mock.Anything, mock.Anything).Return(db.ErrDuplicate)

	router := vehicleTestRouter(store, sequences)
	w := performRequest(t, router, http.MethodPost, "/api/vehicles", validVehiclePayload())

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Vehicle with this license plate or VIN already exists", decodeBody(t, w)["message"])
}

func TestVehicleCreateAssignsBusinessKey(t *testing.T) {
	store := new(mockVehicleStore)
	sequences := new(mockSequenceStore)
	sequences.On("Next", mock.Anything, db.PrefixVehicle).Return("V-1002", nil)
	store.On("Insert", mock.Anything, mock.MatchedBy(func(v *models.Vehicle) bool {
		return v.VehicleID == "V-1002"
	})).Return(nil)

	router := vehicleTestRouter(store, sequences)
	w := performRequest(t, router, http.MethodPost, "/api/vehicles", validVehiclePayload())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "V-1002", decodeBody(t, w)["vehicleId"])
	store.AssertExpectations(t)
}

func TestVehicleCreateRejectsUnknownType(t *testing.T) {
	store := new(mockVehicleStore)

	payload := validVehiclePayload()
	payload["type"] = "hovercraft"

	router := vehicleTestRouter(store, new(mockSequenceStore))
	w := performRequest(t, router, http.MethodPost, "/api/vehicles", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestVehicleListPassesFilters(t *testing.T) {
	store := new(mockVehicleStore)
	store.On("List", mock.Anything, mock.MatchedBy(func(opts db.ListOptions) bool {
		return opts.Status == "available" && opts.Type == "truck"
	})).Return([]models.Vehicle{}, int64(0), nil)

	router := vehicleTestRouter(store, new(mockSequenceStore))
	w := performRequest(t, router, http.MethodGet, "/api/vehicles?status=available&type=truck", nil)

	require.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}
