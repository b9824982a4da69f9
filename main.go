package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	reservationRepoPkg "roomly/database/repository/reservation"
	roomRepoPkg "roomly/database/repository/room"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	ai "roomly/services/intelligence"
	"roomly/services/scheduling"
	"roomly/services/search"
	"roomly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient := database.Connect()
	defer database.Disconnect(mongoClient)
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient := utils.NewCacheClient()
	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo(db)
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo(db)

	// Oracle.
	oracle, err := ai.NewGeminiOracle(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize oracle client: %v", err)
	}

	// Services.
	availability := &scheduling.DefaultAvailabilityEngine{
		ReservationRepo: reservationRepo,
		RoomRepo:        roomRepo,
	}
	reminders := cron.NewReminderQueue()
	ledger := &scheduling.DefaultReservationLedger{
		ReservationRepo: reservationRepo,
		RoomRepo:        roomRepo,
		Reminders:       reminders,
	}
	confirmer := &scheduling.ConfirmationService{
		Oracle:   oracle,
		RoomRepo: roomRepo,
	}
	orchestrator := &search.DefaultOrchestrator{
		Extractor:    &search.RequirementExtractor{Oracle: oracle},
		RoomRepo:     roomRepo,
		Availability: availability,
		Oracle:       oracle,
		CacheClient:  cacheClient,
	}

	cron.InitReminderWorker(ledger)

	// Router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handler := handlers.NewHandler(orchestrator, ledger, availability, confirmer, roomRepo)
	routes.Register(router, handler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
