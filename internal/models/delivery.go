package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryStatus enumerates the lifecycle states of a delivery.
type DeliveryStatus string

const (
	DeliveryScheduled  DeliveryStatus = "scheduled"
	DeliveryInProgress DeliveryStatus = "in-progress"
	DeliveryCompleted  DeliveryStatus = "completed"
	DeliveryCancelled  DeliveryStatus = "cancelled"
	DeliveryDelayed    DeliveryStatus = "delayed"
)

// IsValidDeliveryStatus checks if a delivery status is one of the known values.
func IsValidDeliveryStatus(s DeliveryStatus) bool {
	switch s {
	case DeliveryScheduled, DeliveryInProgress, DeliveryCompleted, DeliveryCancelled, DeliveryDelayed:
		return true
	default:
		return false
	}
}

// LineItem is an embedded product-quantity-price record owned by a delivery.
// The name and price are snapshots taken at creation time.
type LineItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId" binding:"required"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" binding:"required,min=1"`
	Price     float64            `bson:"price" json:"price" binding:"min=0"`
}

// Coordinates is an optional lat/lng pair attached to an address.
type Coordinates struct {
	Lat float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Address is a free-form postal address with optional coordinates.
type Address struct {
	Street      string       `bson:"street,omitempty" json:"street,omitempty"`
	City        string       `bson:"city,omitempty" json:"city,omitempty"`
	State       string       `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode     string       `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// ContactInfo holds an optional point of contact.
type ContactInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Customer identifies the receiving party of a delivery.
type Customer struct {
	Name    string       `bson:"name" json:"name" binding:"required"`
	Contact *ContactInfo `bson:"contact,omitempty" json:"contact,omitempty"`
}

// TimeWindow is the agreed delivery window within the scheduled day.
type TimeWindow struct {
	Start string `bson:"start,omitempty" json:"start,omitempty"`
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

// Mileage records odometer readings for a completed delivery.
type Mileage struct {
	Start float64 `bson:"start,omitempty" json:"start,omitempty"`
	End   float64 `bson:"end,omitempty" json:"end,omitempty"`
	Total float64 `bson:"total,omitempty" json:"total,omitempty"`
}

// Delivery represents a scheduled shipment assigned to a driver and vehicle.
type Delivery struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DeliveryID         string             `bson:"deliveryId" json:"deliveryId"`
	Customer           Customer           `bson:"customer" json:"customer" binding:"required"`
	Address            Address            `bson:"address,omitempty" json:"address,omitempty"`
	DeliveryDate       time.Time          `bson:"deliveryDate" json:"deliveryDate" binding:"required"`
	TimeWindow         *TimeWindow        `bson:"timeWindow,omitempty" json:"timeWindow,omitempty"`
	Status             DeliveryStatus     `bson:"status" json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled delayed"`
	Driver             primitive.ObjectID `bson:"driver" json:"driver" binding:"required"`
	Vehicle            primitive.ObjectID `bson:"vehicle" json:"vehicle" binding:"required"`
	Products           []LineItem         `bson:"products" json:"products" binding:"required,min=1,dive"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalAmount        float64            `bson:"totalAmount" json:"totalAmount"`
	ActualDeliveryTime *time.Time         `bson:"actualDeliveryTime,omitempty" json:"actualDeliveryTime,omitempty"`
	Signature          string             `bson:"signature,omitempty" json:"signature,omitempty"`
	Photos             []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	Mileage            *Mileage           `bson:"mileage,omitempty" json:"mileage,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Expanded references, attached at read time and never persisted.
	DriverInfo  *DriverRef  `bson:"-" json:"driverInfo,omitempty"`
	VehicleInfo *VehicleRef `bson:"-" json:"vehicleInfo,omitempty"`
}

// RecalculateTotal recomputes totalAmount from the current line items,
// overwriting any caller-supplied value. It runs on every save path.
func (d *Delivery) RecalculateTotal() {
	total := 0.0
	for _, p := range d.Products {
		total += float64(p.Quantity) * p.Price
	}
	d.TotalAmount = total
}

// DriverRef is the projection of a driver attached to referencing entities.
type DriverRef struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
}

// VehicleRef is the projection of a vehicle attached to referencing entities.
type VehicleRef struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	VehicleID string             `bson:"vehicleId" json:"vehicleId"`
	Make      string             `bson:"make" json:"make"`
	Model     string             `bson:"model" json:"model"`
}
