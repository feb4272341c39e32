package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// ExpenseHandler handles the expenses resource.
type ExpenseHandler struct {
	Store db.ExpenseStore
}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler(store db.ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{Store: store}
}

// List returns one page of expenses. Expenses support the richest filter
// set: type, category, approval status, and an inclusive date range.
func (h *ExpenseHandler) List(c *gin.Context) {
	opts := listOptions(c)
	expenses, total, err := h.Store.List(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "Expense", "")
		return
	}
	listResponse(c, opts, expenses, total)
}

// Get returns a single expense by id.
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Expense", "")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Create validates and persists an expense.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.Store.Insert(c.Request.Context(), &expense); err != nil {
		respondStoreError(c, err, "Expense", "Expense already exists")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// Update merges the payload over the stored expense.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	expense, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Expense", "")
		return
	}

	createdAt := expense.CreatedAt
	if err := c.ShouldBindJSON(expense); err != nil {
		respondBindingError(c, err)
		return
	}
	expense.CreatedAt = createdAt

	if err := h.Store.Replace(c.Request.Context(), id, expense); err != nil {
		respondStoreError(c, err, "Expense", "Expense already exists")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete removes an expense by id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Expense", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
