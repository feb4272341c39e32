package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleType enumerates the supported vehicle classes.
type VehicleType string

const (
	VehicleTruck      VehicleType = "truck"
	VehicleVan        VehicleType = "van"
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

// VehicleStatus enumerates a vehicle's operational states.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "available"
	VehicleInUse        VehicleStatus = "in-use"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out-of-service"
)

// IsValidVehicleType checks if a vehicle type is one of the known values.
func IsValidVehicleType(t VehicleType) bool {
	switch t {
	case VehicleTruck, VehicleVan, VehicleCar, VehicleMotorcycle:
		return true
	default:
		return false
	}
}

// IsValidVehicleStatus checks if a vehicle status is one of the known values.
func IsValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleMaintenance, VehicleOutOfService:
		return true
	default:
		return false
	}
}

// Capacity is the load limit of a vehicle.
type Capacity struct {
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"` // pounds
	Volume float64 `bson:"volume,omitempty" json:"volume,omitempty"` // cubic feet
}

// Insurance holds the vehicle's insurance policy details.
type Insurance struct {
	Provider       string     `bson:"provider,omitempty" json:"provider,omitempty"`
	PolicyNumber   string     `bson:"policyNumber,omitempty" json:"policyNumber,omitempty"`
	ExpirationDate *time.Time `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
}

// Registration holds the vehicle's registration expiry.
type Registration struct {
	ExpirationDate *time.Time `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
}

// MaintenanceEntry is an append-only service record owned by a vehicle.
type MaintenanceEntry struct {
	Type               string    `bson:"type" json:"type" binding:"required"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	Cost               float64   `bson:"cost" json:"cost" binding:"min=0"`
	Date               time.Time `bson:"date" json:"date" binding:"required"`
	Mileage            float64   `bson:"mileage,omitempty" json:"mileage,omitempty"`
	NextServiceMileage float64   `bson:"nextServiceMileage,omitempty" json:"nextServiceMileage,omitempty"`
}

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	VehicleID          string              `bson:"vehicleId" json:"vehicleId"`
	Make               string              `bson:"make" json:"make" binding:"required"`
	Model              string              `bson:"model" json:"model" binding:"required"`
	Year               int                 `bson:"year" json:"year" binding:"required,min=1900"`
	LicensePlate       string              `bson:"licensePlate" json:"licensePlate" binding:"required"`
	VIN                string              `bson:"vin" json:"vin" binding:"required"`
	Type               VehicleType         `bson:"type" json:"type" binding:"required,oneof=truck van car motorcycle"`
	Capacity           *Capacity           `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Status             VehicleStatus       `bson:"status" json:"status" binding:"omitempty,oneof=available in-use maintenance out-of-service"`
	CurrentMileage     float64             `bson:"currentMileage" json:"currentMileage"`
	FuelType           string              `bson:"fuelType" json:"fuelType" binding:"required,oneof=gasoline diesel electric hybrid"`
	FuelEfficiency     float64             `bson:"fuelEfficiency,omitempty" json:"fuelEfficiency,omitempty"` // miles per gallon
	Insurance          *Insurance          `bson:"insurance,omitempty" json:"insurance,omitempty"`
	Registration       *Registration       `bson:"registration,omitempty" json:"registration,omitempty"`
	MaintenanceHistory []MaintenanceEntry  `bson:"maintenanceHistory,omitempty" json:"maintenanceHistory,omitempty"`
	AssignedDriver     *primitive.ObjectID `bson:"assignedDriver,omitempty" json:"assignedDriver,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`

	// Expanded reference, attached at read time and never persisted.
	AssignedDriverInfo *DriverRef `bson:"-" json:"assignedDriverInfo,omitempty"`
}
