package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-backoffice/internal/models"
)

// Collection names, needed by the $lookup stages.
const (
	CollDeliveries = "deliveries"
	CollDrivers    = "drivers"
	CollVehicles   = "vehicles"
	CollProducts   = "products"
	CollExpenses   = "expenses"
	CollUsers      = "users"
	CollCounters   = "counters"
)

// DateWindow is an optional inclusive date range restricting which records
// contribute to a grouped report. Both bounds must be set to take effect.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// Active reports whether the window restricts anything.
func (w DateWindow) Active() bool {
	return w.Start != nil && w.End != nil
}

// match builds the $match filter over the given date field.
func (w DateWindow) match(field string) bson.M {
	if !w.Active() {
		return bson.M{}
	}
	return bson.M{field: bson.M{"$gte": *w.Start, "$lte": *w.End}}
}

// ReportStore computes the grouped aggregate views. All reads happen at the
// store's default isolation; groups with no matching records are never
// emitted.
type ReportStore interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	DeliveryPerformance(ctx context.Context, window DateWindow) (*models.DeliveryPerformanceReport, error)
	VehicleUtilization(ctx context.Context, window DateWindow) ([]models.VehicleUtilizationRow, error)
	ExpenseAnalysis(ctx context.Context, window DateWindow) (*models.ExpenseAnalysisReport, error)
}

// MongoReportStore implements ReportStore with aggregation pipelines.
type MongoReportStore struct {
	Deliveries *mongo.Collection
	Drivers    *mongo.Collection
	Vehicles   *mongo.Collection
	Expenses   *mongo.Collection
}

// Dashboard computes the point-in-time snapshot. The monthly expense
// figures cover everything since the first day of the current month.
func (s *MongoReportStore) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &models.DashboardStats{}
	var err error

	if stats.Deliveries.Total, err = s.Deliveries.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Deliveries.Active, err = s.Deliveries.CountDocuments(ctx, bson.M{"status": models.DeliveryInProgress}); err != nil {
		return nil, err
	}
	if stats.Deliveries.CompletedThisMonth, err = s.Deliveries.CountDocuments(ctx, bson.M{
		"status":    models.DeliveryCompleted,
		"createdAt": bson.M{"$gte": startOfMonth},
	}); err != nil {
		return nil, err
	}

	if stats.Vehicles.Total, err = s.Vehicles.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Vehicles.Available, err = s.Vehicles.CountDocuments(ctx, bson.M{"status": models.VehicleAvailable}); err != nil {
		return nil, err
	}
	if stats.Vehicles.InMaintenance, err = s.Vehicles.CountDocuments(ctx, bson.M{"status": models.VehicleMaintenance}); err != nil {
		return nil, err
	}

	if stats.Drivers.Total, err = s.Drivers.CountDocuments(ctx, bson.M{"employment.status": models.EmploymentActive}); err != nil {
		return nil, err
	}
	if stats.Drivers.OnDuty, err = s.Drivers.CountDocuments(ctx, bson.M{"currentStatus": models.DriverOnDuty}); err != nil {
		return nil, err
	}

	monthMatch := bson.M{"date": bson.M{"$gte": startOfMonth}}

	totalPipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthMatch}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := s.Expenses.Aggregate(ctx, totalPipeline)
	if err != nil {
		return nil, err
	}
	var totals []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	// No expenses this month means a zero total, not a missing field.
	if len(totals) > 0 {
		stats.Expenses.MonthlyTotal = totals[0].Total
	}

	byTypePipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthMatch}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err = s.Expenses.Aggregate(ctx, byTypePipeline)
	if err != nil {
		return nil, err
	}
	stats.Expenses.ByType = []models.ExpenseTypeTotal{}
	if err := cursor.All(ctx, &stats.Expenses.ByType); err != nil {
		return nil, err
	}

	return stats, nil
}

// DeliveryPerformance groups deliveries by status over the window, and
// ranks drivers by completed deliveries. The driver join is an inner join:
// deliveries whose driver has been deleted drop out of the ranking.
func (s *MongoReportStore) DeliveryPerformance(ctx context.Context, window DateWindow) (*models.DeliveryPerformanceReport, error) {
	report := &models.DeliveryPerformanceReport{
		DeliveryStats:     []models.DeliveryStatusStat{},
		DriverPerformance: []models.DriverPerformanceRow{},
	}

	statsPipeline := mongo.Pipeline{
		{{Key: "$match", Value: window.match("deliveryDate")}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$status",
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$totalAmount"},
		}}},
	}
	cursor, err := s.Deliveries.Aggregate(ctx, statsPipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &report.DeliveryStats); err != nil {
		return nil, err
	}

	completedMatch := window.match("deliveryDate")
	completedMatch["status"] = models.DeliveryCompleted

	perfPipeline := mongo.Pipeline{
		{{Key: "$match", Value: completedMatch}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollDrivers,
			"localField":   "driver",
			"foreignField": "_id",
			"as":           "driverInfo",
		}}},
		{{Key: "$unwind", Value: "$driverInfo"}},
		{{Key: "$group", Value: bson.M{
			"_id": "$driver",
			"driverName": bson.M{"$first": bson.M{"$concat": bson.A{
				"$driverInfo.personalInfo.firstName", " ", "$driverInfo.personalInfo.lastName",
			}}},
			"totalDeliveries": bson.M{"$sum": 1},
			"totalRevenue":    bson.M{"$sum": "$totalAmount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalDeliveries", Value: -1}}}},
	}
	cursor, err = s.Deliveries.Aggregate(ctx, perfPipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &report.DriverPerformance); err != nil {
		return nil, err
	}

	return report, nil
}

// VehicleUtilization ranks vehicles by delivery count and summed mileage
// over the window. Inner join semantics: deliveries whose vehicle has been
// deleted are excluded.
func (s *MongoReportStore) VehicleUtilization(ctx context.Context, window DateWindow) ([]models.VehicleUtilizationRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: window.match("deliveryDate")}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollVehicles,
			"localField":   "vehicle",
			"foreignField": "_id",
			"as":           "vehicleInfo",
		}}},
		{{Key: "$unwind", Value: "$vehicleInfo"}},
		{{Key: "$group", Value: bson.M{
			"_id":             "$vehicle",
			"vehicleId":       bson.M{"$first": "$vehicleInfo.vehicleId"},
			"make":            bson.M{"$first": "$vehicleInfo.make"},
			"model":           bson.M{"$first": "$vehicleInfo.model"},
			"totalDeliveries": bson.M{"$sum": 1},
			"totalMileage":    bson.M{"$sum": "$mileage.total"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalDeliveries", Value: -1}}}},
	}
	cursor, err := s.Deliveries.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	rows := []models.VehicleUtilizationRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExpenseAnalysis groups expense spend by category, by type, and by
// calendar month in chronological order.
func (s *MongoReportStore) ExpenseAnalysis(ctx context.Context, window DateWindow) (*models.ExpenseAnalysisReport, error) {
	report := &models.ExpenseAnalysisReport{
		ByCategory:   []models.ExpenseGroupStat{},
		ByType:       []models.ExpenseGroupStat{},
		MonthlyTrend: []models.MonthlyExpenseTotal{},
	}
	match := window.match("date")

	groupBy := func(key string, out *[]models.ExpenseGroupStat) error {
		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: match}},
			{{Key: "$group", Value: bson.M{
				"_id":   key,
				"total": bson.M{"$sum": "$amount"},
				"count": bson.M{"$sum": 1},
			}}},
		}
		cursor, err := s.Expenses.Aggregate(ctx, pipeline)
		if err != nil {
			return err
		}
		return cursor.All(ctx, out)
	}

	if err := groupBy("$category", &report.ByCategory); err != nil {
		return nil, err
	}
	if err := groupBy("$type", &report.ByType); err != nil {
		return nil, err
	}

	trendPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$date"},
				"month": bson.M{"$month": "$date"},
			},
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}
	cursor, err := s.Expenses.Aggregate(ctx, trendPipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &report.MonthlyTrend); err != nil {
		return nil, err
	}

	return report, nil
}
