package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikiguess/internal/config"
	"wikiguess/internal/database"
	"wikiguess/internal/handlers"
	"wikiguess/internal/repository"
	"wikiguess/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	puzzleRepo := repository.NewPuzzleRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	gameService := service.NewGameService(puzzleRepo, sessionRepo, statsRepo)
	datasetService := service.NewDatasetService(db, puzzleRepo)

	// Seed puzzles from the bundled dataset on first run
	if err := datasetService.Seed(cfg.DatasetPath); err != nil {
		log.Printf("Warning: Failed to seed puzzle dataset: %v", err)
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(cfg.PlayerTokenSecret)
	gameHandler := handlers.NewGameHandler(gameService, cfg.BaseURL)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/puzzle", middleware.WithPlayer(gameHandler.GetPuzzle))
	mux.HandleFunc("POST /api/guess", middleware.WithPlayer(gameHandler.SubmitGuess))
	mux.HandleFunc("POST /api/session/reset", middleware.WithPlayer(gameHandler.ResetSession))
	mux.HandleFunc("GET /api/stats", middleware.WithPlayer(gameHandler.GetStats))
	mux.HandleFunc("GET /api/archive", gameHandler.GetArchive)
	mux.HandleFunc("GET /api/share", middleware.WithPlayer(gameHandler.GetShare))
	mux.HandleFunc("GET /api/share/qr", gameHandler.GetShareQR)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Warning: Forced shutdown: %v", err)
	}
}
