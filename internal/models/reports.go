package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DeliveryCounts is the dashboard's delivery section.
type DeliveryCounts struct {
	Total              int64 `json:"total"`
	Active             int64 `json:"active"`
	CompletedThisMonth int64 `json:"completedThisMonth"`
}

// VehicleCounts is the dashboard's vehicle section.
type VehicleCounts struct {
	Total         int64 `json:"total"`
	Available     int64 `json:"available"`
	InMaintenance int64 `json:"inMaintenance"`
}

// DriverCounts is the dashboard's driver section.
type DriverCounts struct {
	Total  int64 `json:"total"`
	OnDuty int64 `json:"onDuty"`
}

// ExpenseTypeTotal is a per-type sum of expense amounts.
type ExpenseTypeTotal struct {
	Type  ExpenseType `bson:"_id" json:"type"`
	Total float64     `bson:"total" json:"total"`
}

// ExpenseCounts is the dashboard's expense section. MonthlyTotal is 0 when
// no expenses fall in the current month; ByType omits empty groups.
type ExpenseCounts struct {
	MonthlyTotal float64            `json:"monthlyTotal"`
	ByType       []ExpenseTypeTotal `json:"byType"`
}

// DashboardStats is the point-in-time snapshot behind the dashboard page.
type DashboardStats struct {
	Deliveries DeliveryCounts `json:"deliveries"`
	Vehicles   VehicleCounts  `json:"vehicles"`
	Drivers    DriverCounts   `json:"drivers"`
	Expenses   ExpenseCounts  `json:"expenses"`
}

// DeliveryStatusStat is a per-status count and revenue sum over the report
// window.
type DeliveryStatusStat struct {
	Status      DeliveryStatus `bson:"_id" json:"status"`
	Count       int64          `bson:"count" json:"count"`
	TotalAmount float64        `bson:"totalAmount" json:"totalAmount"`
}

// DriverPerformanceRow ranks a driver by completed deliveries in the window.
type DriverPerformanceRow struct {
	DriverID        primitive.ObjectID `bson:"_id" json:"driverId"`
	DriverName      string             `bson:"driverName" json:"driverName"`
	TotalDeliveries int64              `bson:"totalDeliveries" json:"totalDeliveries"`
	TotalRevenue    float64            `bson:"totalRevenue" json:"totalRevenue"`
}

// DeliveryPerformanceReport pairs per-status stats with the driver ranking.
type DeliveryPerformanceReport struct {
	DeliveryStats     []DeliveryStatusStat   `json:"deliveryStats"`
	DriverPerformance []DriverPerformanceRow `json:"driverPerformance"`
}

// VehicleUtilizationRow ranks a vehicle by deliveries in the window.
type VehicleUtilizationRow struct {
	VehicleRef      primitive.ObjectID `bson:"_id" json:"vehicleRef"`
	VehicleID       string             `bson:"vehicleId" json:"vehicleId"`
	Make            string             `bson:"make" json:"make"`
	Model           string             `bson:"model" json:"model"`
	TotalDeliveries int64              `bson:"totalDeliveries" json:"totalDeliveries"`
	TotalMileage    float64            `bson:"totalMileage" json:"totalMileage"`
}

// ExpenseGroupStat is a grouped total and count keyed by category or type.
type ExpenseGroupStat struct {
	Key   string  `bson:"_id" json:"key"`
	Total float64 `bson:"total" json:"total"`
	Count int64   `bson:"count" json:"count"`
}

// ExpensePeriod is a calendar month bucket.
type ExpensePeriod struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

// MonthlyExpenseTotal is one point of the month-bucketed expense series.
type MonthlyExpenseTotal struct {
	Period ExpensePeriod `bson:"_id" json:"period"`
	Total  float64       `bson:"total" json:"total"`
}

// ExpenseAnalysisReport groups expense spend by category, type, and month.
type ExpenseAnalysisReport struct {
	ByCategory   []ExpenseGroupStat    `json:"expensesByCategory"`
	ByType       []ExpenseGroupStat    `json:"expensesByType"`
	MonthlyTrend []MonthlyExpenseTotal `json:"monthlyTrend"`
}
