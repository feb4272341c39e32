package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmploymentStatus enumerates a driver's employment states.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentInactive   EmploymentStatus = "inactive"
	EmploymentOnLeave    EmploymentStatus = "on-leave"
	EmploymentTerminated EmploymentStatus = "terminated"
)

// DriverStatus enumerates a driver's current duty states, independent of
// employment status.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverOnDuty    DriverStatus = "on-duty"
	DriverOffDuty   DriverStatus = "off-duty"
	DriverOnBreak   DriverStatus = "break"
)

// IsValidEmploymentStatus checks if an employment status is one of the known values.
func IsValidEmploymentStatus(s EmploymentStatus) bool {
	switch s {
	case EmploymentActive, EmploymentInactive, EmploymentOnLeave, EmploymentTerminated:
		return true
	default:
		return false
	}
}

// EmergencyContact is the person to reach in case of an incident.
type EmergencyContact struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
}

// PersonalInfo holds a driver's identity and contact details.
type PersonalInfo struct {
	FirstName        string            `bson:"firstName" json:"firstName" binding:"required"`
	LastName         string            `bson:"lastName" json:"lastName" binding:"required"`
	Email            string            `bson:"email" json:"email" binding:"required,email"`
	Phone            string            `bson:"phone" json:"phone" binding:"required"`
	Address          *Address          `bson:"address,omitempty" json:"address,omitempty"`
	DateOfBirth      *time.Time        `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	EmergencyContact *EmergencyContact `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
}

// License holds a driver's license details. The number is unique across drivers.
type License struct {
	Number         string    `bson:"number" json:"number" binding:"required"`
	Class          string    `bson:"class" json:"class" binding:"required"`
	ExpirationDate time.Time `bson:"expirationDate" json:"expirationDate" binding:"required"`
	Endorsements   []string  `bson:"endorsements,omitempty" json:"endorsements,omitempty"`
}

// WorkingHours caps a driver's daily and weekly time on duty.
type WorkingHours struct {
	MaxDaily  float64 `bson:"maxDaily" json:"maxDaily"`
	MaxWeekly float64 `bson:"maxWeekly" json:"maxWeekly"`
}

// Employment holds hiring details and the employment status.
type Employment struct {
	HireDate     time.Time        `bson:"hireDate" json:"hireDate" binding:"required"`
	Status       EmploymentStatus `bson:"status" json:"status" binding:"omitempty,oneof=active inactive on-leave terminated"`
	PayRate      float64          `bson:"payRate,omitempty" json:"payRate,omitempty"`
	WorkingHours *WorkingHours    `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
}

// GeoPoint is a last-known position with the time it was reported.
type GeoPoint struct {
	Lat         float64    `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng         float64    `bson:"lng,omitempty" json:"lng,omitempty"`
	LastUpdated *time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// HoursWorked tracks rolling time-on-duty counters.
type HoursWorked struct {
	Today    float64 `bson:"today" json:"today"`
	ThisWeek float64 `bson:"thisWeek" json:"thisWeek"`
}

// Performance tracks delivery counters and the driver's rating.
type Performance struct {
	TotalDeliveries  int     `bson:"totalDeliveries" json:"totalDeliveries"`
	OnTimeDeliveries int     `bson:"onTimeDeliveries" json:"onTimeDeliveries"`
	Rating           float64 `bson:"rating" json:"rating" binding:"omitempty,min=1,max=5"`
}

// Driver represents an employed delivery driver.
type Driver struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EmployeeID      string              `bson:"employeeId" json:"employeeId"`
	PersonalInfo    PersonalInfo        `bson:"personalInfo" json:"personalInfo" binding:"required"`
	License         License             `bson:"license" json:"license" binding:"required"`
	Employment      Employment          `bson:"employment" json:"employment" binding:"required"`
	CurrentStatus   DriverStatus        `bson:"currentStatus" json:"currentStatus" binding:"omitempty,oneof=available on-duty off-duty break"`
	AssignedVehicle *primitive.ObjectID `bson:"assignedVehicle,omitempty" json:"assignedVehicle,omitempty"`
	CurrentLocation *GeoPoint           `bson:"currentLocation,omitempty" json:"currentLocation,omitempty"`
	HoursWorked     HoursWorked         `bson:"hoursWorked" json:"hoursWorked"`
	Performance     Performance         `bson:"performance" json:"performance"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`

	// Expanded reference, attached at read time and never persisted.
	AssignedVehicleInfo *VehicleRef `bson:"-" json:"assignedVehicleInfo,omitempty"`
}

// FullName returns the driver's display name.
func (d *Driver) FullName() string {
	return d.PersonalInfo.FirstName + " " + d.PersonalInfo.LastName
}
