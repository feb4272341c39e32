package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// VehicleHandler handles the vehicles resource.
type VehicleHandler struct {
	Store     db.VehicleStore
	Sequences db.SequenceStore
}

// NewVehicleHandler creates a vehicle handler.
func NewVehicleHandler(store db.VehicleStore, sequences db.SequenceStore) *VehicleHandler {
	return &VehicleHandler{Store: store, Sequences: sequences}
}

// List returns one page of vehicles, filterable by status and type.
func (h *VehicleHandler) List(c *gin.Context) {
	opts := listOptions(c)
	vehicles, total, err := h.Store.List(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "Vehicle", "")
		return
	}
	listResponse(c, opts, vehicles, total)
}

// Get returns a single vehicle by id.
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Vehicle", "")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Create validates the payload, generates the vehicle's business key, and
// persists it. A VIN or plate collision is rejected by the store's unique
// index and leaves no new document behind.
func (h *VehicleHandler) Create(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		respondBindingError(c, err)
		return
	}

	vehicleID, err := h.Sequences.Next(c.Request.Context(), db.PrefixVehicle)
	if err != nil {
		respondStoreError(c, err, "Vehicle", "")
		return
	}
	vehicle.VehicleID = vehicleID

	if err := h.Store.Insert(c.Request.Context(), &vehicle); err != nil {
		respondStoreError(c, err, "Vehicle", "Vehicle with this license plate or VIN already exists")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// Update merges the payload over the stored vehicle.
func (h *VehicleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	vehicle, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Vehicle", "")
		return
	}

	vehicleID, createdAt := vehicle.VehicleID, vehicle.CreatedAt
	if err := c.ShouldBindJSON(vehicle); err != nil {
		respondBindingError(c, err)
		return
	}
	vehicle.VehicleID = vehicleID
	vehicle.CreatedAt = createdAt

	if err := h.Store.Replace(c.Request.Context(), id, vehicle); err != nil {
		respondStoreError(c, err, "Vehicle", "Vehicle with this license plate or VIN already exists")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Delete removes a vehicle by id.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Vehicle", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
