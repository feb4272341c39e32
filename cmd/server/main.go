package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-backoffice/internal/auth"
	"github.com/fleetops/fleet-backoffice/internal/config"
	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg)
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := db.ConnectMongo(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("error disconnecting from MongoDB")
		}
	}()

	database := client.Database(cfg.MongoDatabase)

	indexCtx, cancelIdx := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIdx()
	if err := db.EnsureIndexes(indexCtx, database); err != nil {
		log.WithError(err).Fatal("failed to create indexes")
	}

	refs := &db.RefResolver{
		Drivers:    database.Collection(db.CollDrivers),
		Vehicles:   database.Collection(db.CollVehicles),
		Deliveries: database.Collection(db.CollDeliveries),
		Users:      database.Collection(db.CollUsers),
	}
	sequences := &db.MongoSequenceStore{Collection: database.Collection(db.CollCounters)}

	deliveryStore := &db.MongoDeliveryStore{Collection: database.Collection(db.CollDeliveries), Refs: refs}
	driverStore := &db.MongoDriverStore{Collection: database.Collection(db.CollDrivers), Refs: refs}
	vehicleStore := &db.MongoVehicleStore{Collection: database.Collection(db.CollVehicles), Refs: refs}
	productStore := &db.MongoProductStore{Collection: database.Collection(db.CollProducts)}
	expenseStore := &db.MongoExpenseStore{Collection: database.Collection(db.CollExpenses), Refs: refs}
	userStore := &db.MongoUserStore{Collection: database.Collection(db.CollUsers)}
	reportStore := &db.MongoReportStore{
		Deliveries: database.Collection(db.CollDeliveries),
		Drivers:    database.Collection(db.CollDrivers),
		Vehicles:   database.Collection(db.CollVehicles),
		Expenses:   database.Collection(db.CollExpenses),
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	router := handlers.NewRouter(handlers.RouterConfig{
		AuthService: authService,
		CORSOrigins: cfg.CORSOrigins,
		Auth:        handlers.NewAuthHandler(userStore, authService),
		Deliveries:  handlers.NewDeliveryHandler(deliveryStore, sequences),
		Drivers:     handlers.NewDriverHandler(driverStore, sequences),
		Vehicles:    handlers.NewVehicleHandler(vehicleStore, sequences),
		Products:    handlers.NewProductHandler(productStore),
		Expenses:    handlers.NewExpenseHandler(expenseStore),
		Reports:     handlers.NewReportsHandler(reportStore),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}

func setupLogging(cfg *config.Config) {
	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
