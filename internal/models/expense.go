package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseType enumerates the kinds of fleet expenses.
type ExpenseType string

const (
	ExpenseFuel         ExpenseType = "fuel"
	ExpenseMaintenance  ExpenseType = "maintenance"
	ExpenseRepair       ExpenseType = "repair"
	ExpenseInsurance    ExpenseType = "insurance"
	ExpenseRegistration ExpenseType = "registration"
	ExpenseTolls        ExpenseType = "tolls"
	ExpenseParking      ExpenseType = "parking"
	ExpenseOther        ExpenseType = "other"
)

// ExpenseCategory enumerates what an expense is attributed to.
type ExpenseCategory string

const (
	CategoryVehicle ExpenseCategory = "vehicle"
	CategoryDriver  ExpenseCategory = "driver"
	CategoryGeneral ExpenseCategory = "general"
)

// ApprovalStatus enumerates an expense's approval states.
type ApprovalStatus string

const (
	ApprovalPending    ApprovalStatus = "pending"
	ApprovalApproved   ApprovalStatus = "approved"
	ApprovalRejected   ApprovalStatus = "rejected"
	ApprovalReimbursed ApprovalStatus = "reimbursed"
)

// IsValidExpenseType checks if an expense type is one of the known values.
func IsValidExpenseType(t ExpenseType) bool {
	switch t {
	case ExpenseFuel, ExpenseMaintenance, ExpenseRepair, ExpenseInsurance,
		ExpenseRegistration, ExpenseTolls, ExpenseParking, ExpenseOther:
		return true
	default:
		return false
	}
}

// IsValidExpenseCategory checks if an expense category is one of the known values.
func IsValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case CategoryVehicle, CategoryDriver, CategoryGeneral:
		return true
	default:
		return false
	}
}

// IsValidApprovalStatus checks if an approval status is one of the known values.
func IsValidApprovalStatus(s ApprovalStatus) bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalReimbursed:
		return true
	default:
		return false
	}
}

// Receipt points at a stored receipt document.
type Receipt struct {
	Filename string `bson:"filename,omitempty" json:"filename,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
}

// FuelDetails carries the fill-up breakdown of a fuel expense.
type FuelDetails struct {
	Gallons        float64 `bson:"gallons,omitempty" json:"gallons,omitempty"`
	PricePerGallon float64 `bson:"pricePerGallon,omitempty" json:"pricePerGallon,omitempty"`
	Odometer       float64 `bson:"odometer,omitempty" json:"odometer,omitempty"`
}

// Vendor identifies who the expense was paid to.
type Vendor struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Expense represents a fleet operating cost, optionally tied to a vehicle,
// driver, or delivery.
type Expense struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type          ExpenseType         `bson:"type" json:"type" binding:"required,oneof=fuel maintenance repair insurance registration tolls parking other"`
	Category      ExpenseCategory     `bson:"category" json:"category" binding:"required,oneof=vehicle driver general"`
	Amount        float64             `bson:"amount" json:"amount" binding:"min=0"`
	Description   string              `bson:"description" json:"description" binding:"required"`
	Date          time.Time           `bson:"date" json:"date" binding:"required"`
	Vehicle       *primitive.ObjectID `bson:"vehicle,omitempty" json:"vehicle,omitempty"`
	Driver        *primitive.ObjectID `bson:"driver,omitempty" json:"driver,omitempty"`
	Delivery      *primitive.ObjectID `bson:"delivery,omitempty" json:"delivery,omitempty"`
	Receipt       *Receipt            `bson:"receipt,omitempty" json:"receipt,omitempty"`
	Mileage       float64             `bson:"mileage,omitempty" json:"mileage,omitempty"`
	FuelDetails   *FuelDetails        `bson:"fuelDetails,omitempty" json:"fuelDetails,omitempty"`
	Vendor        *Vendor             `bson:"vendor,omitempty" json:"vendor,omitempty"`
	PaymentMethod string              `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash credit-card company-card check"`
	Status        ApprovalStatus      `bson:"status" json:"status" binding:"omitempty,oneof=pending approved rejected reimbursed"`
	ApprovedBy    *primitive.ObjectID `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedDate  *time.Time          `bson:"approvedDate,omitempty" json:"approvedDate,omitempty"`
	Notes         string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`

	// Expanded references, attached at read time and never persisted.
	VehicleInfo    *VehicleRef  `bson:"-" json:"vehicleInfo,omitempty"`
	DriverInfo     *DriverRef   `bson:"-" json:"driverInfo,omitempty"`
	DeliveryInfo   *DeliveryRef `bson:"-" json:"deliveryInfo,omitempty"`
	ApprovedByInfo *UserRef     `bson:"-" json:"approvedByInfo,omitempty"`
}

// DeliveryRef is the projection of a delivery attached to referencing entities.
type DeliveryRef struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	DeliveryID string             `bson:"deliveryId" json:"deliveryId"`
}

// UserRef is the projection of a back-office user attached to referencing
// entities.
type UserRef struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Username  string             `bson:"username" json:"username"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
}
