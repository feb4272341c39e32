package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// DeliveryHandler handles the deliveries resource.
type DeliveryHandler struct {
	Store     db.DeliveryStore
	Sequences db.SequenceStore
}

// NewDeliveryHandler creates a delivery handler.
func NewDeliveryHandler(store db.DeliveryStore, sequences db.SequenceStore) *DeliveryHandler {
	return &DeliveryHandler{Store: store, Sequences: sequences}
}

// List returns one page of deliveries matching the query filters.
func (h *DeliveryHandler) List(c *gin.Context) {
	opts := listOptions(c)
	deliveries, total, err := h.Store.List(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "Delivery", "")
		return
	}
	listResponse(c, opts, deliveries, total)
}

// Get returns a single delivery by id.
func (h *DeliveryHandler) Get(c *gin.Context) {
	delivery, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Delivery", "")
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// Create validates the payload, generates the delivery's business key, and
// persists it. The total amount is derived from the line items regardless
// of what the caller sent.
func (h *DeliveryHandler) Create(c *gin.Context) {
	var delivery models.Delivery
	if err := c.ShouldBindJSON(&delivery); err != nil {
		respondBindingError(c, err)
		return
	}

	deliveryID, err := h.Sequences.Next(c.Request.Context(), db.PrefixDelivery)
	if err != nil {
		respondStoreError(c, err, "Delivery", "")
		return
	}
	delivery.DeliveryID = deliveryID

	if err := h.Store.Insert(c.Request.Context(), &delivery); err != nil {
		respondStoreError(c, err, "Delivery", "Delivery with this ID already exists")
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

// Update merges the payload over the stored delivery, so partial updates
// are supported; the business key and creation time are never overwritten.
func (h *DeliveryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	delivery, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Delivery", "")
		return
	}

	deliveryID, createdAt := delivery.DeliveryID, delivery.CreatedAt
	if err := c.ShouldBindJSON(delivery); err != nil {
		respondBindingError(c, err)
		return
	}
	delivery.DeliveryID = deliveryID
	delivery.CreatedAt = createdAt

	if err := h.Store.Replace(c.Request.Context(), id, delivery); err != nil {
		respondStoreError(c, err, "Delivery", "Delivery with this ID already exists")
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// Delete removes a delivery by id.
func (h *DeliveryHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Delivery", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery deleted successfully"})
}
