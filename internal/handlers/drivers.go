package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// DriverHandler handles the drivers resource.
type DriverHandler struct {
	Store     db.DriverStore
	Sequences db.SequenceStore
}

// NewDriverHandler creates a driver handler.
func NewDriverHandler(store db.DriverStore, sequences db.SequenceStore) *DriverHandler {
	return &DriverHandler{Store: store, Sequences: sequences}
}

// List returns one page of drivers, filterable by employment status.
func (h *DriverHandler) List(c *gin.Context) {
	opts := listOptions(c)
	drivers, total, err := h.Store.List(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "Driver", "")
		return
	}
	listResponse(c, opts, drivers, total)
}

// Get returns a single driver by id.
func (h *DriverHandler) Get(c *gin.Context) {
	driver, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Driver", "")
		return
	}
	c.JSON(http.StatusOK, driver)
}

// Create validates the payload, generates the employee id, and persists the
// driver. Email and license number collisions surface as 400s.
func (h *DriverHandler) Create(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		respondBindingError(c, err)
		return
	}

	employeeID, err := h.Sequences.Next(c.Request.Context(), db.PrefixDriver)
	if err != nil {
		respondStoreError(c, err, "Driver", "")
		return
	}
	driver.EmployeeID = employeeID

	if err := h.Store.Insert(c.Request.Context(), &driver); err != nil {
		respondStoreError(c, err, "Driver", "Driver with this email or license number already exists")
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// Update merges the payload over the stored driver.
func (h *DriverHandler) Update(c *gin.Context) {
	id := c.Param("id")
	driver, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Driver", "")
		return
	}

	employeeID, createdAt := driver.EmployeeID, driver.CreatedAt
	if err := c.ShouldBindJSON(driver); err != nil {
		respondBindingError(c, err)
		return
	}
	driver.EmployeeID = employeeID
	driver.CreatedAt = createdAt

	if err := h.Store.Replace(c.Request.Context(), id, driver); err != nil {
		respondStoreError(c, err, "Driver", "Driver with this email or license number already exists")
		return
	}
	c.JSON(http.StatusOK, driver)
}

// Delete removes a driver by id.
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Driver", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}
