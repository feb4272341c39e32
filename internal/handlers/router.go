package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/auth"
	"github.com/fleetops/fleet-backoffice/internal/middleware"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	AuthService *auth.Service
	CORSOrigins []string

	Auth       *AuthHandler
	Deliveries *DeliveryHandler
	Drivers    *DriverHandler
	Vehicles   *VehicleHandler
	Products   *ProductHandler
	Expenses   *ExpenseHandler
	Reports    *ReportsHandler
}

// NewRouter wires the full route table. Login and registration are open;
// everything else under /api requires a valid token.
func NewRouter(rc RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(rc.CORSOrigins) == 1 && rc.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = rc.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	limiter := middleware.NewRateLimiter()

	public := r.Group("/api/auth")
	public.Use(limiter.Limit(20, time.Minute))
	{
		public.POST("/login", rc.Auth.Login)
		public.POST("/register", rc.Auth.Register)
	}

	api := r.Group("/api")
	api.Use(limiter.Limit(300, time.Minute))
	api.Use(middleware.RequireAuth(rc.AuthService))
	{
		api.GET("/auth/profile", rc.Auth.Profile)

		deliveries := api.Group("/deliveries")
		{
			deliveries.GET("", rc.Deliveries.List)
			deliveries.GET("/:id", rc.Deliveries.Get)
			deliveries.POST("", rc.Deliveries.Create)
			deliveries.PUT("/:id", rc.Deliveries.Update)
			deliveries.DELETE("/:id", middleware.RequireRole(models.RoleManager), rc.Deliveries.Delete)
		}

		drivers := api.Group("/drivers")
		{
			drivers.GET("", rc.Drivers.List)
			drivers.GET("/:id", rc.Drivers.Get)
			drivers.POST("", rc.Drivers.Create)
			drivers.PUT("/:id", rc.Drivers.Update)
			drivers.DELETE("/:id", middleware.RequireRole(models.RoleManager), rc.Drivers.Delete)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", rc.Vehicles.List)
			vehicles.GET("/:id", rc.Vehicles.Get)
			vehicles.POST("", rc.Vehicles.Create)
			vehicles.PUT("/:id", rc.Vehicles.Update)
			vehicles.DELETE("/:id", middleware.RequireRole(models.RoleManager), rc.Vehicles.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", rc.Products.List)
			products.GET("/:id", rc.Products.Get)
			products.POST("", rc.Products.Create)
			products.PUT("/:id", rc.Products.Update)
			products.DELETE("/:id", middleware.RequireRole(models.RoleManager), rc.Products.Delete)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", rc.Expenses.List)
			expenses.GET("/:id", rc.Expenses.Get)
			expenses.POST("", rc.Expenses.Create)
			expenses.PUT("/:id", rc.Expenses.Update)
			expenses.DELETE("/:id", middleware.RequireRole(models.RoleManager), rc.Expenses.Delete)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/dashboard", rc.Reports.Dashboard)
			reports.GET("/delivery-performance", rc.Reports.DeliveryPerformance)
			reports.GET("/vehicle-utilization", rc.Reports.VehicleUtilization)
			reports.GET("/expense-analysis", rc.Reports.ExpenseAnalysis)
		}
	}

	return r
}
