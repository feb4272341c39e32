package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dimensions is the physical size of a product.
type Dimensions struct {
	Length float64 `bson:"length,omitempty" json:"length,omitempty"`
	Width  float64 `bson:"width,omitempty" json:"width,omitempty"`
	Height float64 `bson:"height,omitempty" json:"height,omitempty"`
}

// Inventory tracks stock on hand for a product.
type Inventory struct {
	Quantity     int    `bson:"quantity" json:"quantity" binding:"min=0"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`
	ReorderLevel int    `bson:"reorderLevel" json:"reorderLevel"`
}

// Supplier holds the supplier's contact details.
type Supplier struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
}

// Product represents a deliverable good. Unlike the other entities the
// business key is caller-supplied, not generated.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID   string             `bson:"productId" json:"productId" binding:"required"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category" binding:"required"`
	Price       float64            `bson:"price" json:"price" binding:"min=0"`
	Weight      float64            `bson:"weight,omitempty" json:"weight,omitempty" binding:"omitempty,min=0"`
	Dimensions  *Dimensions        `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Inventory   Inventory          `bson:"inventory" json:"inventory"`
	Supplier    *Supplier          `bson:"supplier,omitempty" json:"supplier,omitempty"`
	IsActive    *bool              `bson:"isActive,omitempty" json:"isActive,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	Barcode     string             `bson:"barcode,omitempty" json:"barcode,omitempty"`
	SKU         string             `bson:"sku,omitempty" json:"sku,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
