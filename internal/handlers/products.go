package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// ProductHandler handles the products resource. Product ids come from the
// caller, unlike the generated delivery/driver/vehicle keys.
type ProductHandler struct {
	Store db.ProductStore
}

// NewProductHandler creates a product handler.
func NewProductHandler(store db.ProductStore) *ProductHandler {
	return &ProductHandler{Store: store}
}

// List returns one page of products, filterable by category and search term.
func (h *ProductHandler) List(c *gin.Context) {
	opts := listOptions(c)
	products, total, err := h.Store.List(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "Product", "")
		return
	}
	listResponse(c, opts, products, total)
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Product", "")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create validates and persists a product.
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.Store.Insert(c.Request.Context(), &product); err != nil {
		respondStoreError(c, err, "Product", "Product with this ID already exists")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update merges the payload over the stored product.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	product, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Product", "")
		return
	}

	productID, createdAt := product.ProductID, product.CreatedAt
	if err := c.ShouldBindJSON(product); err != nil {
		respondBindingError(c, err)
		return
	}
	product.ProductID = productID
	product.CreatedAt = createdAt

	if err := h.Store.Replace(c.Request.Context(), id, product); err != nil {
		respondStoreError(c, err, "Product", "Product with this ID already exists")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product by id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Product", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
