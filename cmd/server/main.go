package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"offbeat-travels/internal/infrastructure/config"
	"offbeat-travels/internal/infrastructure/persistence"
	"offbeat-travels/internal/infrastructure/session"
	httpiface "offbeat-travels/internal/interface/http"
	"offbeat-travels/internal/interface/repository"
	"offbeat-travels/internal/usecase"
	"offbeat-travels/pkg/logger"
	"offbeat-travels/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Offbeat Travels")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection (FAQ / contact messages)
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Open both relational shards
	log.Info("Opening relational shards")
	shards, err := persistence.NewShardSet([2]string{cfg.Shard0PostgresDSN, cfg.Shard1PostgresDSN})
	if err != nil {
		log.Fatal("Failed to open shards", "error", err)
	}
	defer shards.Close()

	m := metrics.NewMetrics("offbeat")
	sessions := session.NewStore(cfg.SessionTTL)

	// Set up repositories
	userRepo := repository.NewGormUserRepository(shards)
	placeRepo := repository.NewGormPlaceRepository(shards)
	flightRepo := repository.NewGormFlightRepository(shards)
	bookingRepo := repository.NewGormBookingRepository(shards)
	faqRepo := repository.NewMongoFAQRepository(mongoDB)
	messageRepo := repository.NewMongoContactMessageRepository(mongoDB)

	// Set up services
	authService := usecase.NewAuthService(userRepo, sessions, log, m, cfg.BcryptCost)
	flightService := usecase.NewFlightService(flightRepo, placeRepo, log, m)
	bookingService := usecase.NewBookingService(bookingRepo, flightRepo, log, m)
	contentService := usecase.NewContentService(faqRepo, messageRepo, log)

	e := httpiface.NewRouter(authService, flightService, bookingService, contentService, sessions, log, m)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Drop expired sessions in the background
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sessions.Purge()
			}
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Offbeat Travels stopped")
}
